package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/repository"
)

// LeadService is the lead sink: it persists chat users keyed by contact
// and lead records for sales follow-up. It backs both the public REST
// endpoints and the dialogue engine.
type LeadService struct {
	chatUsers *repository.ChatUserRepository
	leads     *repository.LeadRepository
	logger    *zap.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(
	chatUsers *repository.ChatUserRepository,
	leads *repository.LeadRepository,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		chatUsers: chatUsers,
		leads:     leads,
		logger:    logger,
	}
}

// CreateOrUpdateUser creates a chat user or, for a known contact, updates
// its stored conversation. The returned id is stable per contact.
func (s *LeadService) CreateOrUpdateUser(ctx context.Context, name, contact string, transcript []domain.ConversationMessage) (int64, error) {
	user, err := s.chatUsers.CreateOrUpdate(name, contact, transcript)
	if err != nil {
		return 0, fmt.Errorf("create or update chat user: %w", err)
	}
	return user.ID, nil
}

// GetOrCreateUser is the REST-facing variant returning the full record
func (s *LeadService) GetOrCreateUser(ctx context.Context, req *domain.CreateChatUserRequest) (*domain.ChatUser, error) {
	return s.chatUsers.CreateOrUpdate(req.Name, req.Contact, req.Conversation)
}

// AppendConversation replaces the stored transcript for a chat user
func (s *LeadService) AppendConversation(ctx context.Context, userID int64, transcript []domain.ConversationMessage) error {
	return s.chatUsers.UpdateConversation(userID, transcript)
}

// LogLead writes or refreshes the lead record for the payload's contact
func (s *LeadService) LogLead(ctx context.Context, payload domain.LeadPayload) error {
	_, err := s.RecordLead(ctx, payload)
	return err
}

// RecordLead upserts a lead and mirrors the identity into the chat users
// table, so every lead has a matching chat user.
func (s *LeadService) RecordLead(ctx context.Context, payload domain.LeadPayload) (*domain.Lead, error) {
	lead, err := s.leads.Upsert(payload)
	if err != nil {
		return nil, fmt.Errorf("upsert lead: %w", err)
	}

	if _, err := s.chatUsers.CreateOrUpdate(payload.Name, payload.Contact, nil); err != nil {
		// The lead is saved; a missing chat user mirror is not worth
		// failing the request over.
		s.logger.Warn("failed to mirror lead into chat users",
			zap.String("contact", payload.Contact), zap.Error(err))
	}

	return lead, nil
}
