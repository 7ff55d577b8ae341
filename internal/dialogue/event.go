package dialogue

// Event is one user action handled by the engine. The set is closed.
type Event interface {
	isEvent()
}

// TextEvent carries free-form text input
type TextEvent struct {
	Content string
}

// ChoiceEvent carries a fixed-option selection
type ChoiceEvent struct {
	Choice Choice
}

// PropertyEvent selects a property from the current result list
type PropertyEvent struct {
	PropertyID int64
}

// MortgageEvent carries the raw mortgage calculator form fields
type MortgageEvent struct {
	LoanAmount   string
	InterestRate string
	TermYears    string
}

// RestartEvent resets the session to its initial values
type RestartEvent struct{}

func (TextEvent) isEvent()     {}
func (ChoiceEvent) isEvent()   {}
func (PropertyEvent) isEvent() {}
func (MortgageEvent) isEvent() {}
func (RestartEvent) isEvent()  {}
