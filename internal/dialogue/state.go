package dialogue

// State identifies a step in the chatbot conversation flow. The set is
// closed; every transition out of a state is defined by the engine.
type State int

const (
	// StateGreeting is a vestigial free-text entry point; active sessions
	// start at StateName with the welcome message already emitted.
	StateGreeting State = iota
	StateName
	StateContact
	StateOptions
	StatePropertyCategories
	StatePropertyFilters
	StateFilterPrice
	StateFilterLocation
	StateFilterSize
	StateDisplayProperties
	StatePropertyDetails
	StateScheduleVisit
	StateFinancingOptions
	StateMortgageCalculator
	StateContactAgent
	StateAgentInteraction
	StateEndInteraction
	StateFreeConversation
)

var stateNames = map[State]string{
	StateGreeting:           "greeting",
	StateName:               "name",
	StateContact:            "contact",
	StateOptions:            "options",
	StatePropertyCategories: "property_categories",
	StatePropertyFilters:    "property_filters",
	StateFilterPrice:        "filter_price",
	StateFilterLocation:     "filter_location",
	StateFilterSize:         "filter_size",
	StateDisplayProperties:  "display_properties",
	StatePropertyDetails:    "property_details",
	StateScheduleVisit:      "schedule_visit",
	StateFinancingOptions:   "financing_options",
	StateMortgageCalculator: "mortgage_calculator",
	StateContactAgent:       "contact_agent",
	StateAgentInteraction:   "agent_interaction",
	StateEndInteraction:     "end_interaction",
	StateFreeConversation:   "conversation",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// FreeText reports whether the state accepts free-form text input
func (s State) FreeText() bool {
	switch s {
	case StateGreeting, StateName, StateContact, StateFreeConversation:
		return true
	}
	return false
}
