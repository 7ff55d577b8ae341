package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/service"
)

// Handler handles admin dashboard API requests
type Handler struct {
	adminService *service.AdminService
}

// NewHandler creates a new admin handler
func NewHandler(adminService *service.AdminService) *Handler {
	return &Handler{adminService: adminService}
}

// RegisterRoutes registers admin routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/leads", h.ListLeads)
	r.DELETE("/leads/:id", h.DeleteLead)
	r.GET("/chat/users", h.ListChatUsers)
	r.GET("/stats", h.GetStats)
	r.POST("/properties", h.CreateProperty)
	r.POST("/projects", h.CreateProject)
}

// ListLeads returns all leads, newest first
func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := h.adminService.ListLeads(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": leads, "count": len(leads)})
}

// DeleteLead removes a lead by ID
func (h *Handler) DeleteLead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead ID"})
		return
	}

	if err := h.adminService.DeleteLead(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}

// ListChatUsers returns all chat users with their conversations
func (h *Handler) ListChatUsers(c *gin.Context) {
	users, err := h.adminService.ListChatUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list chat users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
}

// GetStats returns dashboard counters
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateProperty adds a property to the catalog
func (h *Handler) CreateProperty(c *gin.Context) {
	var req domain.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.adminService.CreateProperty(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		return
	}
	c.JSON(http.StatusCreated, property)
}

// CreateProject adds a development project to the catalog
func (h *Handler) CreateProject(c *gin.Context) {
	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.adminService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}
