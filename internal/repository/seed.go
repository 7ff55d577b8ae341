package repository

import "github.com/primeestate/primeestate/internal/domain"

var sampleProperties = []domain.Property{
	{
		Title:       "Modern Family Home",
		Description: "A beautiful 4-bedroom house with modern amenities and a spacious backyard.",
		Price:       750000,
		Location:    "Beverly Hills",
		Type:        "Residential",
		Status:      "For Sale",
		Bedrooms:    4,
		Bathrooms:   3,
		SquareFeet:  2800,
		Garage:      2,
		IsFeatured:  true,
		Image:       "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&auto=format&fit=crop",
	},
	{
		Title:       "Downtown Apartment",
		Description: "Luxurious 2-bedroom apartment in the heart of downtown with amazing city views.",
		Price:       550000,
		Location:    "Downtown",
		Type:        "Apartment",
		Status:      "For Sale",
		Bedrooms:    2,
		Bathrooms:   2,
		SquareFeet:  1200,
		Garage:      1,
		Image:       "https://images.unsplash.com/photo-1551361415-69c87624334f?w=800&auto=format&fit=crop",
	},
	{
		Title:       "Luxury Beachfront Villa",
		Description: "Exclusive beachfront property with private access to the beach and stunning ocean views.",
		Price:       2500000,
		Location:    "Malibu",
		Type:        "Villa",
		Status:      "For Sale",
		Bedrooms:    5,
		Bathrooms:   4,
		SquareFeet:  4500,
		Garage:      3,
		IsFeatured:  true,
		Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&auto=format&fit=crop",
	},
	{
		Title:       "Cozy Studio for Rent",
		Description: "A charming studio apartment perfect for young professionals or students.",
		Price:       1200,
		Location:    "West Hollywood",
		Type:        "Apartment",
		Status:      "For Rent",
		Bathrooms:   1,
		SquareFeet:  500,
		Image:       "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&auto=format&fit=crop",
	},
}

var sampleProjects = []domain.Project{
	{
		Title:              "Sunset Villas",
		Description:        "A new development of luxury villas with ocean views and modern amenities.",
		Location:           "Coastal Hills",
		Status:             "Under Construction",
		CompletionDate:     "2025-12-31",
		Units:              "24 Units",
		StartingPrice:      1200000,
		ProgressPercentage: 65,
		Image:              "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=800&auto=format&fit=crop",
	},
	{
		Title:              "Metro Heights",
		Description:        "Modern apartment complex in the heart of downtown with retail and restaurant spaces.",
		Location:           "Downtown",
		Status:             "Planning",
		CompletionDate:     "2026-06-30",
		Units:              "120 Units",
		StartingPrice:      400000,
		ProgressPercentage: 20,
		Image:              "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800&auto=format&fit=crop",
	},
	{
		Title:              "Green Valley Community",
		Description:        "Eco-friendly residential community with green spaces and sustainable features.",
		Location:           "Valley District",
		Status:             "Under Construction",
		CompletionDate:     "2025-08-15",
		Units:              "45 Units",
		StartingPrice:      650000,
		ProgressPercentage: 45,
		Image:              "https://images.unsplash.com/photo-1592595896616-c37162298647?w=800&auto=format&fit=crop",
	},
}

// SeedCatalog inserts sample properties and projects when the respective
// tables are empty, so a fresh install serves a working catalog.
func SeedCatalog(properties *PropertyRepository, projects *ProjectRepository) error {
	propertyCount, err := properties.Count()
	if err != nil {
		return err
	}
	if propertyCount == 0 {
		for i := range sampleProperties {
			p := sampleProperties[i]
			if err := properties.Create(&p); err != nil {
				return err
			}
		}
	}

	projectCount, err := projects.Count()
	if err != nil {
		return err
	}
	if projectCount == 0 {
		for i := range sampleProjects {
			p := sampleProjects[i]
			if err := projects.Create(&p); err != nil {
				return err
			}
		}
	}

	return nil
}
