package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/primeestate/primeestate/internal/dialogue"
	"github.com/primeestate/primeestate/internal/domain"
)

// ChoiceView is one selectable option rendered by the widget
type ChoiceView struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// SessionView is the widget-facing snapshot of a session
type SessionView struct {
	SessionID  string                       `json:"session_id"`
	State      string                       `json:"state"`
	FreeText   bool                         `json:"free_text"`
	Choices    []ChoiceView                 `json:"choices,omitempty"`
	Properties []domain.Property            `json:"properties,omitempty"`
	Transcript []domain.ConversationMessage `json:"transcript"`
}

// EventRequest is one user action submitted by the widget
type EventRequest struct {
	Type       string `json:"type" binding:"required"` // text, choice, property, mortgage, restart
	Text       string `json:"text,omitempty"`
	Choice     string `json:"choice,omitempty"`
	PropertyID int64  `json:"property_id,omitempty"`
	Mortgage   *struct {
		LoanAmount   string `json:"loan_amount"`
		InterestRate string `json:"interest_rate"`
		TermYears    string `json:"term_years"`
	} `json:"mortgage,omitempty"`
}

// EventResponse carries the bot's reaction to one event
type EventResponse struct {
	SessionID  string            `json:"session_id"`
	State      string            `json:"state"`
	FreeText   bool              `json:"free_text"`
	Replies    []dialogue.Reply  `json:"replies"`
	Choices    []ChoiceView      `json:"choices,omitempty"`
	Properties []domain.Property `json:"properties,omitempty"`
}

// sessionEntry serializes events for one session. Handlers for the same
// session run to completion in arrival order; different sessions are
// fully independent.
type sessionEntry struct {
	mu      sync.Mutex
	session *dialogue.Session
}

// WidgetService owns the active widget sessions and routes their events
// through the dialogue engine.
type WidgetService struct {
	engine *dialogue.Engine
	ttl    time.Duration
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewWidgetService creates a new widget service
func NewWidgetService(engine *dialogue.Engine, ttl time.Duration, logger *zap.Logger) *WidgetService {
	return &WidgetService{
		engine:   engine,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*sessionEntry),
	}
}

// StartSession opens a fresh session seeded with the welcome message
func (s *WidgetService) StartSession(ctx context.Context) *SessionView {
	session := s.engine.NewSession(uuid.New().String())

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session}
	s.mu.Unlock()

	s.logger.Debug("widget session started", zap.String("session_id", session.ID))
	return s.view(session)
}

// GetSession returns the current snapshot of a session
func (s *WidgetService) GetSession(ctx context.Context, id string) (*SessionView, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return s.view(entry.session), nil
}

// HandleEvent runs one user event through the engine
func (s *WidgetService) HandleEvent(ctx context.Context, id string, req *EventRequest) (*EventResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	event, err := toEvent(req)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	session := entry.session
	replies := s.engine.Handle(ctx, session, event)

	resp := &EventResponse{
		SessionID: session.ID,
		State:     session.State.String(),
		FreeText:  session.State.FreeText(),
		Replies:   replies,
		Choices:   choiceViews(session.State),
	}
	if session.State == dialogue.StateDisplayProperties {
		resp.Properties = session.Results
	}
	return resp, nil
}

// PruneExpired drops sessions idle past the TTL and returns how many
func (s *WidgetService) PruneExpired() int {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, entry := range s.sessions {
		// UpdatedAt is written under the entry lock. A session whose lock
		// is busy is mid-event, so it is not idle; skip it.
		if !entry.mu.TryLock() {
			continue
		}
		idle := entry.session.UpdatedAt.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			pruned++
		}
	}
	if pruned > 0 {
		s.logger.Info("pruned idle widget sessions", zap.Int("count", pruned))
	}
	return pruned
}

// RunJanitor prunes expired sessions periodically until ctx is done
func (s *WidgetService) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PruneExpired()
		}
	}
}

func (s *WidgetService) entry(id string) (*sessionEntry, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return entry, nil
}

func (s *WidgetService) view(session *dialogue.Session) *SessionView {
	view := &SessionView{
		SessionID:  session.ID,
		State:      session.State.String(),
		FreeText:   session.State.FreeText(),
		Choices:    choiceViews(session.State),
		Transcript: session.Transcript,
	}
	if session.State == dialogue.StateDisplayProperties {
		view.Properties = session.Results
	}
	return view
}

func toEvent(req *EventRequest) (dialogue.Event, error) {
	switch req.Type {
	case "text":
		return dialogue.TextEvent{Content: req.Text}, nil
	case "choice":
		return dialogue.ChoiceEvent{Choice: dialogue.ParseChoice(req.Choice)}, nil
	case "property":
		return dialogue.PropertyEvent{PropertyID: req.PropertyID}, nil
	case "mortgage":
		ev := dialogue.MortgageEvent{}
		if req.Mortgage != nil {
			ev.LoanAmount = req.Mortgage.LoanAmount
			ev.InterestRate = req.Mortgage.InterestRate
			ev.TermYears = req.Mortgage.TermYears
		}
		return ev, nil
	case "restart":
		return dialogue.RestartEvent{}, nil
	}
	return nil, domain.ErrInvalidRequest
}

func choiceViews(state dialogue.State) []ChoiceView {
	choices := dialogue.ChoicesFor(state)
	if len(choices) == 0 {
		return nil
	}
	views := make([]ChoiceView, 0, len(choices))
	for _, c := range choices {
		views = append(views, ChoiceView{Label: c.Label(), Description: c.Description()})
	}
	return views
}
