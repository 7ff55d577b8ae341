package dialogue

import (
	"time"

	"github.com/primeestate/primeestate/internal/domain"
)

// pendingInput marks what a FreeConversation prompt is waiting for
type pendingInput int

const (
	pendingNone pendingInput = iota
	pendingVisitTime
	pendingVisitDate
)

// Identity holds who the visitor is. UserID is assigned by the lead sink
// on the first successful contact submission and never reassigned.
type Identity struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	UserID  int64  `json:"user_id,omitempty"`
}

// Selection holds the transient per-flow choices
type Selection struct {
	Category   Choice `json:"-"`
	Filter     Choice `json:"-"`
	PriceRange Choice `json:"-"`
	PropertyID int64  `json:"property_id,omitempty"`
	TimeSlot   string `json:"time_slot,omitempty"`
	Date       string `json:"date,omitempty"`
}

// LeadState tracks lead-sink writes for the session
type LeadState struct {
	Logged       bool
	Interactions []string
}

// Session is the full mutable state of one visitor's chatbot interaction.
// It is owned by a single goroutine at a time; the widget store serializes
// events per session.
type Session struct {
	ID         string
	State      State
	Identity   Identity
	Selection  Selection
	Results    []domain.Property
	Transcript []domain.ConversationMessage
	Lead       LeadState

	pending   pendingInput
	UpdatedAt time.Time
}

// NewSession starts a session at the name-collection step with the welcome
// message already in the transcript.
func NewSession(id, welcome string) *Session {
	s := &Session{ID: id}
	s.Reset(welcome)
	return s
}

// Reset restores the session to its initial values and re-seeds the
// transcript with the welcome message. The session id is kept.
func (s *Session) Reset(welcome string) {
	s.State = StateName
	s.Identity = Identity{}
	s.Selection = Selection{}
	s.Results = nil
	s.Lead = LeadState{}
	s.pending = pendingNone
	s.Transcript = []domain.ConversationMessage{{
		Role:      domain.RoleBot,
		Message:   welcome,
		Timestamp: time.Now().UnixMilli(),
	}}
	s.UpdatedAt = time.Now()
}

func (s *Session) addUser(message string) {
	s.append(domain.RoleUser, message)
}

func (s *Session) addBot(message string) {
	s.append(domain.RoleBot, message)
}

func (s *Session) append(role, message string) {
	s.Transcript = append(s.Transcript, domain.ConversationMessage{
		Role:      role,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
	s.UpdatedAt = time.Now()
}

// property returns the property with the given id from the current result
// list, or nil if it is not there.
func (s *Session) property(id int64) *domain.Property {
	for i := range s.Results {
		if s.Results[i].ID == id {
			return &s.Results[i]
		}
	}
	return nil
}

// setResults replaces the result list wholesale; results are never merged
func (s *Session) setResults(properties []domain.Property) {
	s.Results = properties
	s.Selection.PropertyID = 0
}
