package repository

import (
	"database/sql"

	"github.com/primeestate/primeestate/internal/domain"
)

const leadColumns = `id, name, contact, interest, property_interest,
	location_interest, budget_range, notes, assigned_agent, follow_up_date, created_at`

// LeadRepository handles lead persistence
type LeadRepository struct {
	db *DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Upsert creates a lead, or refreshes the existing lead for the same
// contact. One row per contact, enforced by the unique index so concurrent
// writers for the same contact cannot duplicate it.
func (r *LeadRepository) Upsert(payload domain.LeadPayload) (*domain.Lead, error) {
	_, err := r.db.Exec(`
		INSERT INTO leads (name, contact, interest, property_interest,
			location_interest, budget_range, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(contact) DO UPDATE SET
			name = excluded.name,
			interest = excluded.interest,
			property_interest = excluded.property_interest,
			location_interest = excluded.location_interest,
			budget_range = excluded.budget_range,
			notes = excluded.notes
	`, payload.Name, payload.Contact, payload.Interest, payload.PropertyInterest,
		payload.LocationInterest, payload.BudgetRange, payload.Notes)
	if err != nil {
		return nil, err
	}
	return r.GetByContact(payload.Contact)
}

// Get retrieves a lead by ID. Returns nil when not found.
func (r *LeadRepository) Get(id int64) (*domain.Lead, error) {
	row := r.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// GetByContact retrieves the lead for a contact. Returns nil when not found.
func (r *LeadRepository) GetByContact(contact string) (*domain.Lead, error) {
	row := r.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE contact = ? LIMIT 1`, contact)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// List retrieves all leads, newest first
func (r *LeadRepository) List() ([]domain.Lead, error) {
	rows, err := r.db.Query(`SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

// Delete deletes a lead by ID
func (r *LeadRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the number of leads
func (r *LeadRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var propertyInterest, locationInterest, budgetRange, notes, agent, followUp sql.NullString
	err := row.Scan(&lead.ID, &lead.Name, &lead.Contact, &lead.Interest,
		&propertyInterest, &locationInterest, &budgetRange, &notes,
		&agent, &followUp, &lead.CreatedAt)
	if err != nil {
		return nil, err
	}
	lead.PropertyInterest = propertyInterest.String
	lead.LocationInterest = locationInterest.String
	lead.BudgetRange = budgetRange.String
	lead.Notes = notes.String
	lead.AssignedAgent = agent.String
	lead.FollowUpDate = followUp.String
	return lead, nil
}
