package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/primeestate/primeestate/internal/domain"
)

// Catalog is the read-only property/project inventory the dialogue queries
type Catalog interface {
	ListAll(ctx context.Context) ([]domain.Property, error)
	ListByCategory(ctx context.Context, propertyType string) ([]domain.Property, error)
	ListByLocation(ctx context.Context, location string) ([]domain.Property, error)
	ListByPriceRange(ctx context.Context, min, max int64) ([]domain.Property, error)
	ListBySize(ctx context.Context, minSqFt, maxSqFt int) ([]domain.Property, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// LeadSink persists visitor identity and interest records
type LeadSink interface {
	// CreateOrUpdateUser is idempotent per contact: resubmitting the same
	// contact returns the same user id.
	CreateOrUpdateUser(ctx context.Context, name, contact string, transcript []domain.ConversationMessage) (int64, error)
	AppendConversation(ctx context.Context, userID int64, transcript []domain.ConversationMessage) error
	LogLead(ctx context.Context, payload domain.LeadPayload) error
}

// Reply is one bot message to deliver. DelayMs is a pacing hint for the
// client; delivery order is what matters. Error replies are inline
// validation feedback and are not part of the transcript.
type Reply struct {
	Text    string `json:"text"`
	DelayMs int    `json:"delay_ms,omitempty"`
	Error   bool   `json:"error,omitempty"`
}

// Options configures the engine
type Options struct {
	WelcomeMessage string
	// SignificantActions force a lead write even after the first one;
	// matched case-insensitively as substrings of the interest label.
	SignificantActions []string
}

// Engine decides, for every user action, the next state, the messages to
// emit, and the collaborator calls to make. It holds no per-session state.
type Engine struct {
	catalog     Catalog
	leads       LeadSink
	welcome     string
	significant []string
	logger      *zap.Logger
}

const (
	defaultWelcome  = "Hello! Welcome to PrimeEstate. I'm your virtual assistant. Could you please share your name?"
	defaultResponse = "How can I assist you with that?"
)

// NewEngine creates a dialogue engine
func NewEngine(catalog Catalog, leads LeadSink, opts Options, logger *zap.Logger) *Engine {
	if opts.WelcomeMessage == "" {
		opts.WelcomeMessage = defaultWelcome
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	significant := make([]string, 0, len(opts.SignificantActions))
	for _, s := range opts.SignificantActions {
		significant = append(significant, strings.ToLower(s))
	}
	return &Engine{
		catalog:     catalog,
		leads:       leads,
		welcome:     opts.WelcomeMessage,
		significant: significant,
		logger:      logger,
	}
}

// Welcome returns the configured welcome message
func (e *Engine) Welcome() string {
	return e.welcome
}

// NewSession starts a fresh session
func (e *Engine) NewSession(id string) *Session {
	return NewSession(id, e.welcome)
}

// Handle processes one user event against the session and returns the bot
// replies, in delivery order. It never fails: validation problems come
// back as error replies, collaborator failures as apology messages.
func (e *Engine) Handle(ctx context.Context, s *Session, ev Event) []Reply {
	switch ev := ev.(type) {
	case RestartEvent:
		s.Reset(e.welcome)
		return []Reply{{Text: e.welcome}}
	case TextEvent:
		return e.handleText(ctx, s, ev.Content)
	case ChoiceEvent:
		return e.handleChoice(ctx, s, ev.Choice)
	case PropertyEvent:
		return e.handleProperty(ctx, s, ev.PropertyID)
	case MortgageEvent:
		return e.handleMortgage(ctx, s, ev)
	}
	return []Reply{{Text: defaultResponse, Error: true}}
}

func (e *Engine) handleText(ctx context.Context, s *Session, text string) []Reply {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	switch s.State {
	case StateGreeting:
		s.addUser(text)
		s.State = StateName
		return e.say(s, Reply{
			Text:    "I'm here to help you find your perfect property. Could you please share your name?",
			DelayMs: 500,
		})

	case StateName:
		if !ValidName(text) {
			return []Reply{{Text: "Please enter your full name (at least 2 characters)", Error: true}}
		}
		s.addUser(text)
		s.Identity.Name = text
		s.State = StateContact
		return e.say(s, Reply{
			Text:    fmt.Sprintf("Nice to meet you, %s! Could you please share your email or phone number so we can better assist you?", text),
			DelayMs: 500,
		})

	case StateContact:
		if !ValidContact(text) {
			return []Reply{{Text: "Please enter a valid email address or phone number", Error: true}}
		}
		s.addUser(text)
		s.Identity.Contact = text

		userID, err := e.leads.CreateOrUpdateUser(ctx, s.Identity.Name, s.Identity.Contact, s.Transcript)
		if err != nil {
			e.logger.Warn("failed to save chat user", zap.Error(err))
			return e.say(s, Reply{
				Text:    "Sorry, I couldn't save your information right now. Please try again.",
				DelayMs: 500,
			})
		}
		if s.Identity.UserID == 0 {
			s.Identity.UserID = userID
		}
		s.State = StateOptions
		return e.say(s, Reply{
			Text:    fmt.Sprintf("Thank you, %s! How can I help you today?", s.Identity.Name),
			DelayMs: 500,
		})

	case StateFreeConversation:
		s.addUser(text)
		switch s.pending {
		case pendingVisitDate:
			s.Selection.Date = text
		case pendingVisitTime:
			if s.Selection.TimeSlot != "" {
				s.Selection.TimeSlot += " " + text
			} else {
				s.Selection.TimeSlot = text
			}
		}
		s.pending = pendingNone
		s.State = StateEndInteraction
		replies := e.say(s, Reply{
			Text:    "Thank you for the information. One of our real estate experts will follow up with more details soon. Is there anything else you'd like to know?",
			DelayMs: 1000,
		})
		e.persistConversation(ctx, s)
		return replies

	default:
		s.addUser(text)
		return e.say(s, Reply{Text: defaultResponse, DelayMs: 500})
	}
}

func (e *Engine) handleChoice(ctx context.Context, s *Session, choice Choice) []Reply {
	if !choiceAllowed(s.State, choice) {
		return []Reply{{Text: defaultResponse, Error: true}}
	}

	switch s.State {
	case StateOptions:
		return e.handleMainOption(ctx, s, choice)
	case StatePropertyCategories:
		return e.handleCategory(s, choice)
	case StatePropertyFilters:
		return e.handleFilter(ctx, s, choice)
	case StateFilterPrice:
		return e.handlePriceRange(ctx, s, choice)
	case StateFilterLocation:
		return e.handleLocation(ctx, s, choice)
	case StateFilterSize:
		return e.handleSize(ctx, s, choice)
	case StateDisplayProperties:
		return e.handleResultNav(s, choice)
	case StatePropertyDetails:
		return e.handleDetailAction(ctx, s, choice)
	case StateScheduleVisit:
		return e.handleTimeSlot(s, choice)
	case StateFinancingOptions:
		return e.handleFinancing(ctx, s, choice)
	case StateContactAgent:
		s.addUser(choice.Label())
		s.State = StateEndInteraction
		return e.say(s, Reply{
			Text:    "Thank you! An agent will be in touch with you soon. Would you like to explore more properties?",
			DelayMs: 500,
		})
	case StateAgentInteraction:
		return e.handleAgentInteraction(ctx, s, choice)
	case StateEndInteraction:
		return e.handleEndInteraction(s, choice)
	}
	return []Reply{{Text: defaultResponse, Error: true}}
}

func (e *Engine) handleMainOption(ctx context.Context, s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())
	e.logInteraction(ctx, s, choice.Label(), nil)

	switch choice {
	case ChoiceBrowseProperties:
		s.State = StatePropertyCategories
		return e.say(s, Reply{
			Text:    "Great choice! We have properties in multiple categories. Let me show you what we offer. Please choose from the following:",
			DelayMs: 500,
		})

	case ChoiceSearchByLocation:
		s.State = StateFilterLocation
		return e.say(s, Reply{
			Text:    "Perfect! Which area or neighborhood are you interested in?",
			DelayMs: 500,
		})

	case ChoiceOngoingProjects:
		projects, err := e.catalog.ListProjects(ctx)
		if err != nil {
			e.logger.Warn("failed to list projects", zap.Error(err))
			return e.say(s, Reply{
				Text:    "Sorry, I couldn't load our projects right now. Please try again in a moment.",
				DelayMs: 500,
			})
		}
		s.State = StateFreeConversation
		return e.say(s,
			Reply{Text: "We have several exciting projects in development! Here's what's currently underway:", DelayMs: 500},
			Reply{Text: projectSummary(projects), DelayMs: 800},
		)

	case ChoicePropertyDetails:
		s.State = StateFreeConversation
		return e.say(s, Reply{
			Text:    "I'd be happy to provide details on a specific property. Do you have a property ID or address in mind?",
			DelayMs: 500,
		})

	case ChoiceFinancingHelp:
		s.State = StateFinancingOptions
		return e.say(s, Reply{
			Text:    "We can help you find financing solutions for your new home! Do you need help with mortgage calculations or connecting with a financial advisor?",
			DelayMs: 500,
		})
	}
	return e.say(s, Reply{Text: defaultResponse, DelayMs: 500})
}

func (e *Engine) handleCategory(s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())
	s.Selection.Category = choice
	s.State = StatePropertyFilters
	return e.say(s, Reply{
		Text:    fmt.Sprintf("Great choice! We have several %s available. How would you like to filter them?", strings.ToLower(choice.Label())),
		DelayMs: 500,
	})
}

func (e *Engine) handleFilter(ctx context.Context, s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())
	s.Selection.Filter = choice

	switch choice {
	case ChoiceFilterByPrice:
		s.State = StateFilterPrice
		return e.say(s, Reply{Text: "Please select your preferred price range.", DelayMs: 500})
	case ChoiceFilterByLocation:
		s.State = StateFilterLocation
		return e.say(s, Reply{Text: "Which area are you interested in?", DelayMs: 500})
	case ChoiceFilterBySize:
		s.State = StateFilterSize
		return e.say(s, Reply{Text: "What size are you looking for?", DelayMs: 500})
	case ChoiceShowAll:
		var properties []domain.Property
		var err error
		if propertyType := categoryType(s.Selection.Category); propertyType != "" {
			properties, err = e.catalog.ListByCategory(ctx, propertyType)
		} else {
			properties, err = e.catalog.ListAll(ctx)
		}
		if err != nil {
			e.logger.Warn("failed to list properties", zap.Error(err))
			return e.say(s, Reply{
				Text:    "Sorry, I couldn't load our properties right now. Please try again in a moment.",
				DelayMs: 500,
			})
		}
		return e.showResults(s, properties, "Here are the properties that match your criteria:")
	}
	return e.say(s, Reply{Text: defaultResponse, DelayMs: 500})
}

func (e *Engine) handlePriceRange(ctx context.Context, s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())
	s.Selection.PriceRange = choice

	min, max := priceBounds(choice)
	properties, err := e.catalog.ListByPriceRange(ctx, min, max)
	if err != nil {
		e.logger.Warn("failed to list properties by price", zap.Error(err))
		return e.say(s, Reply{
			Text:    "Sorry, I couldn't load our properties right now. Please try again in a moment.",
			DelayMs: 500,
		})
	}
	return e.showResults(s, properties, "Here are the properties that match your price range:")
}

func (e *Engine) handleLocation(ctx context.Context, s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())

	properties, err := e.catalog.ListByLocation(ctx, choice.Label())
	if err != nil {
		e.logger.Warn("failed to list properties by location", zap.Error(err))
		return e.say(s, Reply{
			Text:    "Sorry, I couldn't load our properties right now. Please try again in a moment.",
			DelayMs: 500,
		})
	}
	return e.showResults(s, properties, fmt.Sprintf("Here are properties in %s:", choice.Label()))
}

func (e *Engine) handleSize(ctx context.Context, s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())

	min, max := sizeBounds(choice)
	properties, err := e.catalog.ListBySize(ctx, min, max)
	if err != nil {
		e.logger.Warn("failed to list properties by size", zap.Error(err))
		return e.say(s, Reply{
			Text:    "Sorry, I couldn't load our properties right now. Please try again in a moment.",
			DelayMs: 500,
		})
	}
	return e.showResults(s, properties, fmt.Sprintf("Here are properties with size %s:", choice.Label()))
}

// showResults replaces the result list wholesale and moves to the listing
// state. An empty result set still lands there so the navigation options
// stay available.
func (e *Engine) showResults(s *Session, properties []domain.Property, heading string) []Reply {
	s.setResults(properties)
	s.State = StateDisplayProperties
	if len(properties) == 0 {
		return e.say(s, Reply{
			Text:    "I couldn't find any properties matching your criteria right now. Would you like to try different filters?",
			DelayMs: 800,
		})
	}
	return e.say(s, Reply{Text: heading, DelayMs: 800})
}

func (e *Engine) handleResultNav(s *Session, choice Choice) []Reply {
	switch choice {
	case ChoiceBackToMenu:
		s.addUser(choice.Label())
		s.State = StateOptions
		return e.say(s, Reply{
			Text:    fmt.Sprintf("%s, what else can I help you with today?", s.Identity.Name),
			DelayMs: 500,
		})
	case ChoiceBackToFilters:
		s.addUser(choice.Label())
		switch s.Selection.Filter {
		case ChoiceFilterByPrice:
			s.State = StateFilterPrice
			return e.say(s, Reply{Text: "Please select your preferred price range.", DelayMs: 500})
		case ChoiceFilterByLocation:
			s.State = StateFilterLocation
			return e.say(s, Reply{Text: "Which area are you interested in?", DelayMs: 500})
		case ChoiceFilterBySize:
			s.State = StateFilterSize
			return e.say(s, Reply{Text: "What size are you looking for?", DelayMs: 500})
		default:
			s.State = StatePropertyFilters
			return e.say(s, Reply{Text: "How would you like to filter properties?", DelayMs: 500})
		}
	case ChoiceContinueBrowsing:
		s.addUser(choice.Label())
		s.State = StateOptions
		return e.say(s, Reply{Text: "What else would you like to explore?", DelayMs: 500})
	}
	return []Reply{{Text: defaultResponse, Error: true}}
}

func (e *Engine) handleProperty(ctx context.Context, s *Session, id int64) []Reply {
	if s.State != StateDisplayProperties {
		return []Reply{{Text: defaultResponse, Error: true}}
	}

	property := s.property(id)
	if property == nil {
		s.addUser("I'd like to know more about that property")
		s.State = StateFreeConversation
		return e.say(s, Reply{
			Text:    "I'm sorry, I couldn't find details for that property.",
			DelayMs: 500,
		})
	}

	s.addUser(fmt.Sprintf("I'd like to know more about %s", property.Title))
	s.Selection.PropertyID = id
	e.logInteraction(ctx, s, fmt.Sprintf("Interested in property: %s", property.Title), property)

	s.State = StatePropertyDetails
	return e.say(s,
		Reply{Text: propertyDetails(property), DelayMs: 500},
		Reply{Text: "Would you like to schedule a visit, request a brochure, or contact an agent?", DelayMs: 500},
	)
}

func (e *Engine) handleDetailAction(ctx context.Context, s *Session, choice Choice) []Reply {
	switch choice {
	case ChoiceScheduleVisit:
		s.addUser("I'd like to schedule a visit")
		s.State = StateScheduleVisit
		return e.say(s, Reply{Text: "Please select a time slot for your visit.", DelayMs: 500})

	case ChoiceRequestBrochure:
		s.addUser("Request a brochure")
		s.State = StateAgentInteraction
		return e.say(s, Reply{
			Text:    fmt.Sprintf("We've sent a brochure to your email (%s). Would you like to schedule a visit or talk to an agent?", s.Identity.Contact),
			DelayMs: 500,
		})

	case ChoiceContactAgent:
		return e.contactAgent(ctx, s)
	}
	return []Reply{{Text: defaultResponse, Error: true}}
}

// contactAgent is shared by the property-details and agent-interaction
// flows. With a known user it closes the loop; otherwise it asks for
// confirmation first.
func (e *Engine) contactAgent(ctx context.Context, s *Session) []Reply {
	s.addUser("I'd like to contact an agent")
	e.logInteraction(ctx, s, "Requested agent contact", s.property(s.Selection.PropertyID))

	intro := Reply{
		Text:    "I can connect you with one of our expert agents. Please share your contact details, and one of our agents will reach out to you shortly.",
		DelayMs: 500,
	}

	if s.Identity.UserID != 0 {
		s.State = StateEndInteraction
		return e.say(s,
			intro,
			Reply{
				Text:    fmt.Sprintf("We already have your contact information (%s). An agent will be in touch with you soon.", s.Identity.Contact),
				DelayMs: 500,
			},
			Reply{
				Text:    "Would you like to explore more properties or get assistance with something else?",
				DelayMs: 800,
			},
		)
	}

	s.State = StateContactAgent
	return e.say(s, intro)
}

func (e *Engine) handleTimeSlot(s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())

	if choice == ChoiceVisitChooseDate {
		s.pending = pendingVisitDate
		s.State = StateFreeConversation
		return e.say(s, Reply{Text: "Please enter your preferred date (MM/DD/YYYY):", DelayMs: 500})
	}

	day, _, _ := strings.Cut(choice.Label(), " - ")
	s.Selection.TimeSlot = day
	s.pending = pendingVisitTime
	s.State = StateFreeConversation

	slots := visitSlots[choice]
	return e.say(s,
		Reply{
			Text:    fmt.Sprintf("Available times for %s:\n\n%s", day, strings.Join(slots, "\n")),
			DelayMs: 500,
		},
		Reply{Text: "Please type the time you prefer.", DelayMs: 800},
	)
}

func (e *Engine) handleFinancing(ctx context.Context, s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())
	e.logInteraction(ctx, s, fmt.Sprintf("Selected financing option: %s", choice.Label()), nil)

	switch choice {
	case ChoiceMortgageCalculator:
		s.State = StateMortgageCalculator
		return e.say(s, Reply{
			Text:    "Please enter your loan amount and other details to calculate your EMI.",
			DelayMs: 500,
		})
	case ChoiceFinancialAdvisor:
		s.State = StateContactAgent
		return e.say(s, Reply{
			Text:    "I can connect you with one of our expert financial advisors. Please confirm if you'd like to be contacted by a financial advisor.",
			DelayMs: 500,
		})
	}
	return []Reply{{Text: defaultResponse, Error: true}}
}

func (e *Engine) handleMortgage(ctx context.Context, s *Session, ev MortgageEvent) []Reply {
	loanAmount, errAmount := strconv.ParseFloat(strings.TrimSpace(ev.LoanAmount), 64)
	interestRate, errRate := strconv.ParseFloat(strings.TrimSpace(ev.InterestRate), 64)
	termYears, errTerm := strconv.Atoi(strings.TrimSpace(ev.TermYears))

	if errAmount != nil || errRate != nil || errTerm != nil || termYears <= 0 || loanAmount < 0 || interestRate < 0 {
		return []Reply{{Text: "Please ensure all values are valid numbers.", Error: true}}
	}

	results := CalculateMortgage(loanAmount, 0, termYears, interestRate)
	e.logInteraction(ctx, s, fmt.Sprintf(
		"Used mortgage calculator - Loan Amount: %s, Monthly Payment: %s",
		formatCurrency(int64(loanAmount)), formatCurrency(results.MonthlyPayment)), nil)

	resultMessage := fmt.Sprintf(`Based on your inputs:

Loan Amount: %s
Interest Rate: %g%%
Loan Term: %d years

Monthly Payment: %s
  - Principal & Interest: %s
  - Estimated Taxes: %s
  - Estimated Insurance: %s`,
		formatCurrency(int64(loanAmount)), interestRate, termYears,
		formatCurrency(results.MonthlyPayment),
		formatCurrency(results.PrincipalInterest),
		formatCurrency(results.Taxes),
		formatCurrency(results.Insurance))

	s.addUser(fmt.Sprintf("Calculate mortgage for %s over %d years at %g%%",
		formatCurrency(int64(loanAmount)), termYears, interestRate))
	s.State = StateEndInteraction
	return e.say(s,
		Reply{Text: resultMessage, DelayMs: 500},
		Reply{
			Text:    "Would you like to explore properties within this budget or connect with a financial advisor?",
			DelayMs: 800,
		},
	)
}

func (e *Engine) handleAgentInteraction(ctx context.Context, s *Session, choice Choice) []Reply {
	switch choice {
	case ChoiceAgentScheduleVisit:
		s.addUser("Yes, I'd like to schedule a visit")
		s.State = StateScheduleVisit
		return e.say(s, Reply{Text: "Please select a time slot for your visit.", DelayMs: 500})
	case ChoiceAgentTalk:
		return e.contactAgent(ctx, s)
	case ChoiceAgentContinueBrowsing:
		s.addUser("No, I'd like to continue browsing")
		s.State = StateOptions
		return e.say(s, Reply{
			Text:    "Sure! Let's continue browsing. What would you like to explore next?",
			DelayMs: 500,
		})
	}
	return []Reply{{Text: defaultResponse, Error: true}}
}

func (e *Engine) handleEndInteraction(s *Session, choice Choice) []Reply {
	s.addUser(choice.Label())

	if choice == ChoiceDoneForNow {
		s.State = StateFreeConversation
		return e.say(s, Reply{Text: "Thank you for visiting PrimeEstate. Have a great day!", DelayMs: 500})
	}

	s.State = StatePropertyCategories
	return e.say(s, Reply{Text: "What kind of properties would you like to explore?", DelayMs: 500})
}

// say appends each reply to the transcript and returns them in order
func (e *Engine) say(s *Session, replies ...Reply) []Reply {
	for _, r := range replies {
		s.addBot(r.Text)
	}
	return replies
}

// logInteraction records the action in the session's interaction log and
// writes a lead when the policy calls for it: the first interaction always
// goes out, later ones only for significant actions. Failures are logged
// and swallowed; they never block the dialogue.
func (e *Engine) logInteraction(ctx context.Context, s *Session, interest string, property *domain.Property) {
	if s.Identity.Name == "" || s.Identity.Contact == "" {
		return
	}

	note := interest
	if property != nil && !strings.Contains(interest, property.Title) {
		note = interest + " - " + property.Title
	}
	s.Lead.Interactions = append(s.Lead.Interactions, note)

	if s.Lead.Logged && !e.isSignificant(interest) {
		return
	}

	var notes strings.Builder
	for i, item := range s.Lead.Interactions {
		if i > 0 {
			notes.WriteByte('\n')
		}
		fmt.Fprintf(&notes, "%d. %s", i+1, item)
	}

	payload := domain.LeadPayload{
		Name:        s.Identity.Name,
		Contact:     s.Identity.Contact,
		Interest:    interest,
		BudgetRange: s.Selection.PriceRange.Label(),
		Notes:       notes.String(),
	}
	if property != nil {
		payload.PropertyInterest = property.Title
		payload.LocationInterest = property.Location
	} else if s.Selection.Category != ChoiceUnknown {
		payload.PropertyInterest = s.Selection.Category.Label()
	}

	if err := e.leads.LogLead(ctx, payload); err != nil {
		e.logger.Warn("failed to log lead", zap.Error(err))
		return
	}
	s.Lead.Logged = true
}

func (e *Engine) isSignificant(interest string) bool {
	interest = strings.ToLower(interest)
	for _, keyword := range e.significant {
		if strings.Contains(interest, keyword) {
			return true
		}
	}
	return false
}

// persistConversation is a best-effort write of the transcript for a known
// user; failure is logged, never surfaced.
func (e *Engine) persistConversation(ctx context.Context, s *Session) {
	if s.Identity.UserID == 0 {
		return
	}
	if err := e.leads.AppendConversation(ctx, s.Identity.UserID, s.Transcript); err != nil {
		e.logger.Warn("failed to persist conversation",
			zap.Int64("user_id", s.Identity.UserID), zap.Error(err))
	}
}

func propertyDetails(p *domain.Property) string {
	return fmt.Sprintf(`Here are the detailed specifications for %s:

Location: %s
Price: %s
Size: %d sq ft
Bedrooms: %d
Bathrooms: %d
Status: %s

%s`,
		p.Title, p.Location, formatCurrency(p.Price), p.SquareFeet,
		p.Bedrooms, p.Bathrooms, p.Status, p.Description)
}

func projectSummary(projects []domain.Project) string {
	if len(projects) == 0 {
		return "We don't have any projects in development at the moment. Check back soon!"
	}
	var b strings.Builder
	for i, p := range projects {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s - %s (%s, from %s)",
			i+1, p.Title, p.Description, p.Status, formatCurrency(p.StartingPrice))
	}
	return b.String()
}
