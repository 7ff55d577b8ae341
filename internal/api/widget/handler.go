package widget

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/service"
)

// Handler handles chat widget session requests
type Handler struct {
	widgetService *service.WidgetService
}

// NewHandler creates a new widget handler
func NewHandler(widgetService *service.WidgetService) *Handler {
	return &Handler{widgetService: widgetService}
}

// RegisterRoutes registers widget routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sessions", h.StartSession)
	r.GET("/sessions/:id", h.GetSession)
	r.POST("/sessions/:id/events", h.HandleEvent)
}

// StartSession opens a fresh dialogue session and returns its greeting
func (h *Handler) StartSession(c *gin.Context) {
	view := h.widgetService.StartSession(c.Request.Context())
	c.JSON(http.StatusCreated, view)
}

// GetSession returns the current state of a session
func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.widgetService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleEvent feeds one visitor event into a session
func (h *Handler) HandleEvent(c *gin.Context) {
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.widgetService.HandleEvent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
