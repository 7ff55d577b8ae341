package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/primeestate/primeestate/internal/domain"
)

func seedTestProperties(t *testing.T, repo *PropertyRepository) []domain.Property {
	t.Helper()
	properties := []domain.Property{
		{Title: "Skyline Residences", Description: "Two-bedroom apartment", Price: 450000, Location: "Downtown", Type: "Apartment", Status: "For Sale", Bedrooms: 2, Bathrooms: 2, SquareFeet: 1200, IsFeatured: true},
		{Title: "Palm Grove Villa", Description: "Beachfront villa", Price: 1250000, Location: "Beachfront", Type: "Villa", Status: "For Sale", Bedrooms: 4, Bathrooms: 3, SquareFeet: 3400, Garage: 2},
		{Title: "Meadow Plot 7", Description: "Half-acre plot", Price: 180000, Location: "Countryside", Type: "Land", Status: "For Sale", SquareFeet: 21000},
	}
	for i := range properties {
		require.NoError(t, repo.Create(&properties[i]))
		require.NotZero(t, properties[i].ID)
	}
	return properties
}

func TestPropertyCreateAndGet(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	created := seedTestProperties(t, repo)

	got, err := repo.Get(created[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Skyline Residences", got.Title)
	require.Equal(t, int64(450000), got.Price)
	require.True(t, got.IsFeatured)

	missing, err := repo.Get(999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPropertyList(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	seedTestProperties(t, repo)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)

	featured, err := repo.ListFeatured()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	require.Equal(t, "Skyline Residences", featured[0].Title)
}

func TestPropertyListByType(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	seedTestProperties(t, repo)

	villas, err := repo.ListByType("villa")
	require.NoError(t, err)
	require.Len(t, villas, 1)
	require.Equal(t, "Palm Grove Villa", villas[0].Title)
}

func TestPropertyListByLocation(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	seedTestProperties(t, repo)

	downtown, err := repo.ListByLocation("downtown")
	require.NoError(t, err)
	require.Len(t, downtown, 1)

	nowhere, err := repo.ListByLocation("Atlantis")
	require.NoError(t, err)
	require.Empty(t, nowhere)
}

func TestPropertyListByPriceRange(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	seedTestProperties(t, repo)

	cheap, err := repo.ListByPriceRange(0, 500000)
	require.NoError(t, err)
	require.Len(t, cheap, 2)

	// a zero max means unbounded
	expensive, err := repo.ListByPriceRange(1000000, 0)
	require.NoError(t, err)
	require.Len(t, expensive, 1)
	require.Equal(t, "Palm Grove Villa", expensive[0].Title)
}

func TestPropertyListBySize(t *testing.T) {
	repo := NewPropertyRepository(newTestDB(t))
	seedTestProperties(t, repo)

	mid, err := repo.ListBySize(1000, 2000)
	require.NoError(t, err)
	require.Len(t, mid, 1)
	require.Equal(t, "Skyline Residences", mid[0].Title)

	large, err := repo.ListBySize(3000, 0)
	require.NoError(t, err)
	require.Len(t, large, 2)
}
