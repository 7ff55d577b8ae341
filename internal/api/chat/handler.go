package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/service"
)

// Handler handles chat user and lead API requests
type Handler struct {
	leadService *service.LeadService
}

// NewHandler creates a new chat handler
func NewHandler(leadService *service.LeadService) *Handler {
	return &Handler{leadService: leadService}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat/users", h.CreateOrUpdateUser)
	r.PATCH("/chat/users/:id", h.UpdateConversation)
	r.POST("/leads/log", h.LogLead)
}

// CreateOrUpdateUser creates a chat user, or updates the conversation for
// an existing contact. The id it returns is stable per contact.
func (h *Handler) CreateOrUpdateUser(c *gin.Context) {
	var req domain.CreateChatUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.leadService.GetOrCreateUser(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create chat user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateConversation replaces a chat user's stored transcript
func (h *Handler) UpdateConversation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req domain.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.leadService.AppendConversation(c.Request.Context(), id, req.Conversation); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation updated"})
}

// LogLead writes or refreshes the lead record for a contact
func (h *Handler) LogLead(c *gin.Context) {
	var payload domain.LeadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.RecordLead(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log lead"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "lead logged successfully", "data": lead, "lead_id": lead.ID})
}
