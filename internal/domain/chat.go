package domain

// ConversationMessage is a single transcript entry
type ConversationMessage struct {
	Role      string `json:"role"` // user, bot
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// Transcript roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatUser is a visitor identified through the chatbot
type ChatUser struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Contact      string                `json:"contact"`
	Conversation []ConversationMessage `json:"conversation,omitempty"`
}

// CreateChatUserRequest creates or updates a chat user by contact
type CreateChatUserRequest struct {
	Name         string                `json:"name" binding:"required"`
	Contact      string                `json:"contact" binding:"required"`
	Conversation []ConversationMessage `json:"conversation,omitempty"`
}

// UpdateConversationRequest replaces a chat user's stored transcript
type UpdateConversationRequest struct {
	Conversation []ConversationMessage `json:"conversation" binding:"required"`
}
