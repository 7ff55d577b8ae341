package dialogue

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

// ValidName reports whether the name has at least 2 characters after trim
func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// ValidContact reports whether the contact is an email address or a
// 10-15 digit phone number
func ValidContact(contact string) bool {
	contact = strings.TrimSpace(contact)
	return emailPattern.MatchString(contact) || phonePattern.MatchString(contact)
}
