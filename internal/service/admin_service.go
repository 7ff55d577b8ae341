package service

import (
	"context"

	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/repository"
)

// AdminService handles admin operations
type AdminService struct {
	properties *repository.PropertyRepository
	projects   *repository.ProjectRepository
	chatUsers  *repository.ChatUserRepository
	leads      *repository.LeadRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	properties *repository.PropertyRepository,
	projects *repository.ProjectRepository,
	chatUsers *repository.ChatUserRepository,
	leads *repository.LeadRepository,
) *AdminService {
	return &AdminService{
		properties: properties,
		projects:   projects,
		chatUsers:  chatUsers,
		leads:      leads,
	}
}

// Lead operations

func (s *AdminService) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List()
}

func (s *AdminService) DeleteLead(ctx context.Context, id int64) error {
	return s.leads.Delete(id)
}

// Chat user operations

func (s *AdminService) ListChatUsers(ctx context.Context) ([]domain.ChatUser, error) {
	return s.chatUsers.List()
}

// Inventory operations

func (s *AdminService) CreateProperty(ctx context.Context, req *domain.CreatePropertyRequest) (*domain.Property, error) {
	property := &domain.Property{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Type:        req.Type,
		Status:      req.Status,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		Garage:      req.Garage,
		IsFeatured:  req.IsFeatured,
		Image:       req.Image,
	}
	if err := s.properties.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *AdminService) CreateProject(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	project := &domain.Project{
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		Units:              req.Units,
		StartingPrice:      req.StartingPrice,
		CompletionDate:     req.CompletionDate,
		Status:             req.Status,
		ProgressPercentage: req.ProgressPercentage,
		Image:              req.Image,
	}
	if err := s.projects.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Stats

func (s *AdminService) GetStats(ctx context.Context) (*domain.Stats, error) {
	properties, _ := s.properties.Count()
	projects, _ := s.projects.Count()
	leads, _ := s.leads.Count()
	chatUsers, _ := s.chatUsers.Count()

	return &domain.Stats{
		TotalProperties: properties,
		TotalProjects:   projects,
		TotalLeads:      leads,
		TotalChatUsers:  chatUsers,
	}, nil
}
