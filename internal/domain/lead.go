package domain

import "time"

// Lead is a persisted record of a prospective customer's interest
type Lead struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Contact          string    `json:"contact"`
	Interest         string    `json:"interest"`
	PropertyInterest string    `json:"property_interest,omitempty"`
	LocationInterest string    `json:"location_interest,omitempty"`
	BudgetRange      string    `json:"budget_range,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	AssignedAgent    string    `json:"assigned_agent,omitempty"`
	FollowUpDate     string    `json:"follow_up_date,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// LeadPayload is the lead-sink write payload. Notes carries the
// newline-joined, 1-indexed interaction log for the session.
type LeadPayload struct {
	Name             string `json:"name" binding:"required,min=2"`
	Contact          string `json:"contact" binding:"required,min=5"`
	Interest         string `json:"interest" binding:"required"`
	PropertyInterest string `json:"property_interest,omitempty"`
	LocationInterest string `json:"location_interest,omitempty"`
	BudgetRange      string `json:"budget_range,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// Stats summarizes inventory and lead volume for the admin dashboard
type Stats struct {
	TotalProperties int `json:"total_properties"`
	TotalProjects   int `json:"total_projects"`
	TotalLeads      int `json:"total_leads"`
	TotalChatUsers  int `json:"total_chat_users"`
}
