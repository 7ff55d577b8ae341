package service

import (
	"context"

	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/repository"
)

// CatalogService serves the read-only property/project inventory. It backs
// both the public REST endpoints and the dialogue engine's catalog.
type CatalogService struct {
	properties *repository.PropertyRepository
	projects   *repository.ProjectRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	properties *repository.PropertyRepository,
	projects *repository.ProjectRepository,
) *CatalogService {
	return &CatalogService{
		properties: properties,
		projects:   projects,
	}
}

// ListAll returns every property
func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Property, error) {
	return s.properties.List()
}

// ListFeatured returns featured properties
func (s *CatalogService) ListFeatured(ctx context.Context) ([]domain.Property, error) {
	return s.properties.ListFeatured()
}

// GetProperty returns a property by id
func (s *CatalogService) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.properties.Get(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ListByCategory returns properties of a type
func (s *CatalogService) ListByCategory(ctx context.Context, propertyType string) ([]domain.Property, error) {
	return s.properties.ListByType(propertyType)
}

// ListByLocation returns properties in a location
func (s *CatalogService) ListByLocation(ctx context.Context, location string) ([]domain.Property, error) {
	return s.properties.ListByLocation(location)
}

// ListByPriceRange returns properties within a price window; max 0 means
// unbounded
func (s *CatalogService) ListByPriceRange(ctx context.Context, min, max int64) ([]domain.Property, error) {
	return s.properties.ListByPriceRange(min, max)
}

// ListBySize returns properties within a square-footage window; max 0
// means unbounded
func (s *CatalogService) ListBySize(ctx context.Context, minSqFt, maxSqFt int) ([]domain.Property, error) {
	return s.properties.ListBySize(minSqFt, maxSqFt)
}

// ListProjects returns all development projects
func (s *CatalogService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List()
}

// GetProject returns a project by id
func (s *CatalogService) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.projects.Get(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
