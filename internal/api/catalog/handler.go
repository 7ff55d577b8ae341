package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/service"
)

// Handler handles catalog API requests
type Handler struct {
	catalogService *service.CatalogService
}

// NewHandler creates a new catalog handler
func NewHandler(catalogService *service.CatalogService) *Handler {
	return &Handler{catalogService: catalogService}
}

// RegisterRoutes registers catalog routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/properties", h.ListProperties)
	r.GET("/properties/featured", h.ListFeatured)
	r.GET("/properties/:id", h.GetProperty)
	r.GET("/properties/type/:type", h.ListByType)
	r.GET("/properties/location/:location", h.ListByLocation)
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
}

// ListProperties returns all properties
func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.catalogService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch properties"})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// ListFeatured returns featured properties
func (h *Handler) ListFeatured(c *gin.Context) {
	properties, err := h.catalogService.ListFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch featured properties"})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GetProperty returns a property by id
func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return
	}

	property, err := h.catalogService.GetProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch property"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// ListByType returns properties of a type
func (h *Handler) ListByType(c *gin.Context) {
	properties, err := h.catalogService.ListByCategory(c.Request.Context(), c.Param("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch properties by type"})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// ListByLocation returns properties in a location
func (h *Handler) ListByLocation(c *gin.Context) {
	properties, err := h.catalogService.ListByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch properties by location"})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// ListProjects returns all projects
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.catalogService.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns a project by id
func (h *Handler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	project, err := h.catalogService.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, project)
}
