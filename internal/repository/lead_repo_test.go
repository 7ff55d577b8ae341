package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/primeestate/primeestate/internal/domain"
)

func TestLeadUpsert(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))

	lead, err := repo.Upsert(domain.LeadPayload{
		Name:     "Jordan",
		Contact:  "jordan@example.com",
		Interest: "Browse properties",
		Notes:    "1. Browse properties",
	})
	require.NoError(t, err)
	require.NotZero(t, lead.ID)
	require.Equal(t, "Browse properties", lead.Interest)
	require.False(t, lead.CreatedAt.IsZero())

	// same contact updates the existing row instead of adding one
	updated, err := repo.Upsert(domain.LeadPayload{
		Name:             "Jordan",
		Contact:          "jordan@example.com",
		Interest:         "Requested agent contact",
		PropertyInterest: "Palm Grove Villa",
		Notes:            "1. Browse properties\n2. Requested agent contact",
	})
	require.NoError(t, err)
	require.Equal(t, lead.ID, updated.ID)
	require.Equal(t, "Requested agent contact", updated.Interest)
	require.Equal(t, "Palm Grove Villa", updated.PropertyInterest)

	count, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestLeadContactUniqueInSchema(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeadRepository(db)

	_, err := repo.Upsert(domain.LeadPayload{Name: "Jordan", Contact: "jordan@example.com", Interest: "Browse properties"})
	require.NoError(t, err)

	// a second row for the same contact is rejected by the schema itself,
	// so racing writers cannot duplicate a lead
	_, err = db.Exec(`INSERT INTO leads (name, contact, interest) VALUES (?, ?, ?)`,
		"Jordan", "jordan@example.com", "Requested agent contact")
	require.Error(t, err)

	count, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestLeadListAndDelete(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))

	first, err := repo.Upsert(domain.LeadPayload{Name: "Jordan", Contact: "jordan@example.com", Interest: "Browse properties"})
	require.NoError(t, err)
	_, err = repo.Upsert(domain.LeadPayload{Name: "Sam", Contact: "5551234567", Interest: "Mortgage calculator"})
	require.NoError(t, err)

	leads, err := repo.List()
	require.NoError(t, err)
	require.Len(t, leads, 2)

	require.NoError(t, repo.Delete(first.ID))
	require.ErrorIs(t, repo.Delete(first.ID), domain.ErrNotFound)

	leads, err = repo.List()
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, "Sam", leads[0].Name)
}

func TestLeadGetByContact(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))

	_, err := repo.Upsert(domain.LeadPayload{Name: "Jordan", Contact: "jordan@example.com", Interest: "Browse properties"})
	require.NoError(t, err)

	got, err := repo.GetByContact("jordan@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Jordan", got.Name)

	missing, err := repo.GetByContact("nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}
