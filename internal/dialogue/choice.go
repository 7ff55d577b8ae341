package dialogue

// Choice identifies a fixed, UI-rendered option the user can pick. One
// closed set covers every button in the flow so dispatch is exhaustive and
// an unrecognized label can only ever map to ChoiceUnknown.
type Choice int

const (
	ChoiceUnknown Choice = iota

	// Main menu
	ChoiceBrowseProperties
	ChoiceSearchByLocation
	ChoiceOngoingProjects
	ChoicePropertyDetails
	ChoiceFinancingHelp

	// Property categories
	ChoiceApartments
	ChoiceVillas
	ChoiceCommercialSpaces
	ChoicePlotsLands

	// Property filters
	ChoiceFilterByPrice
	ChoiceFilterByLocation
	ChoiceFilterBySize
	ChoiceShowAll

	// Price ranges
	ChoicePriceBelow500K
	ChoicePrice500KTo1M
	ChoicePriceAbove1M

	// Locations
	ChoiceDowntown
	ChoiceSuburban
	ChoiceBeachfront
	ChoiceCountryside

	// Size bands
	ChoiceSizeUnder1000
	ChoiceSize1000To2000
	ChoiceSize2000To3000
	ChoiceSizeOver3000

	// Property detail actions
	ChoiceScheduleVisit
	ChoiceRequestBrochure
	ChoiceContactAgent

	// Visit scheduling
	ChoiceVisitToday
	ChoiceVisitTomorrow
	ChoiceVisitChooseDate

	// Financing
	ChoiceMortgageCalculator
	ChoiceFinancialAdvisor

	// Agent contact confirmation
	ChoiceConfirmAgentContact

	// Agent interaction follow-up
	ChoiceAgentScheduleVisit
	ChoiceAgentTalk
	ChoiceAgentContinueBrowsing

	// End of interaction
	ChoiceShowMoreProperties
	ChoiceDoneForNow

	// Result-list navigation
	ChoiceBackToMenu
	ChoiceBackToFilters
	ChoiceContinueBrowsing
)

var choiceLabels = map[Choice]string{
	ChoiceBrowseProperties: "Browse properties",
	ChoiceSearchByLocation: "Search by location",
	ChoiceOngoingProjects:  "Check out ongoing projects",
	ChoicePropertyDetails:  "Get details on a specific property",
	ChoiceFinancingHelp:    "Get help with financing options",

	ChoiceApartments:       "Apartments",
	ChoiceVillas:           "Villas",
	ChoiceCommercialSpaces: "Commercial Spaces",
	ChoicePlotsLands:       "Plots/Lands",

	ChoiceFilterByPrice:    "Filter by price range",
	ChoiceFilterByLocation: "Filter by location",
	ChoiceFilterBySize:     "Filter by size",
	ChoiceShowAll:          "Show all options",

	ChoicePriceBelow500K: "Below $500k",
	ChoicePrice500KTo1M:  "$500k - $1M",
	ChoicePriceAbove1M:   "Above $1M",

	ChoiceDowntown:    "Downtown",
	ChoiceSuburban:    "Suburban Area",
	ChoiceBeachfront:  "Beachfront",
	ChoiceCountryside: "Countryside",

	ChoiceSizeUnder1000:  "Less than 1000 sq ft",
	ChoiceSize1000To2000: "1000-2000 sq ft",
	ChoiceSize2000To3000: "2000-3000 sq ft",
	ChoiceSizeOver3000:   "More than 3000 sq ft",

	ChoiceScheduleVisit:   "Schedule a visit",
	ChoiceRequestBrochure: "Request a brochure",
	ChoiceContactAgent:    "Contact an agent",

	ChoiceVisitToday:      "Today - Available time slots",
	ChoiceVisitTomorrow:   "Tomorrow - Available time slots",
	ChoiceVisitChooseDate: "Choose a specific date",

	ChoiceMortgageCalculator: "Mortgage calculator",
	ChoiceFinancialAdvisor:   "Connect with financial advisor",

	ChoiceConfirmAgentContact: "Confirm",

	ChoiceAgentScheduleVisit:    "Yes, schedule a visit",
	ChoiceAgentTalk:             "Yes, talk to an agent",
	ChoiceAgentContinueBrowsing: "No, continue browsing",

	ChoiceShowMoreProperties: "Yes, show me more properties.",
	ChoiceDoneForNow:         "No, I'm done for now.",

	ChoiceBackToMenu:       "Back to Main Menu",
	ChoiceBackToFilters:    "Back to Filters",
	ChoiceContinueBrowsing: "Continue Browsing",
}

var choicesByLabel = func() map[string]Choice {
	m := make(map[string]Choice, len(choiceLabels))
	for c, label := range choiceLabels {
		m[label] = c
	}
	return m
}()

// Label returns the UI label for the choice
func (c Choice) Label() string {
	return choiceLabels[c]
}

// ParseChoice maps a UI label back to its choice. Unknown labels map to
// ChoiceUnknown.
func ParseChoice(label string) Choice {
	return choicesByLabel[label]
}

var choiceDescriptions = map[Choice]string{
	ChoiceApartments:       "Modern living spaces in prime locations",
	ChoiceVillas:           "Luxurious standalone homes with premium amenities",
	ChoiceCommercialSpaces: "Office and retail spaces for your business",
	ChoicePlotsLands:       "Vacant lots ready for your dream construction",

	ChoiceFilterByPrice:    "Find properties that match your budget",
	ChoiceFilterByLocation: "Search in your preferred neighborhoods",
	ChoiceFilterBySize:     "Filter by square footage or number of rooms",
	ChoiceShowAll:          "View all available properties",

	ChoiceMortgageCalculator: "Calculate your monthly payments",
	ChoiceFinancialAdvisor:   "Get personalized financing advice",
}

// Description returns the secondary UI text for the choice, if any
func (c Choice) Description() string {
	return choiceDescriptions[c]
}

// priceBounds returns the catalog price window for a price-range choice.
// A zero max means unbounded.
func priceBounds(c Choice) (min, max int64) {
	switch c {
	case ChoicePriceBelow500K:
		return 0, 500000
	case ChoicePrice500KTo1M:
		return 500000, 1000000
	case ChoicePriceAbove1M:
		return 1000000, 0
	}
	return 0, 0
}

// sizeBounds returns the square-footage window for a size-band choice.
// A zero max means unbounded.
func sizeBounds(c Choice) (min, max int) {
	switch c {
	case ChoiceSizeUnder1000:
		return 0, 1000
	case ChoiceSize1000To2000:
		return 1000, 2000
	case ChoiceSize2000To3000:
		return 2000, 3000
	case ChoiceSizeOver3000:
		return 3000, 0
	}
	return 0, 0
}

// categoryType maps a property category choice to the catalog type column
func categoryType(c Choice) string {
	switch c {
	case ChoiceApartments:
		return "Apartment"
	case ChoiceVillas:
		return "Villa"
	case ChoiceCommercialSpaces:
		return "Commercial"
	case ChoicePlotsLands:
		return "Land"
	}
	return ""
}

// visitSlots lists the offered viewing times per day choice
var visitSlots = map[Choice][]string{
	ChoiceVisitToday:    {"10:00 AM", "11:30 AM", "2:00 PM", "4:30 PM"},
	ChoiceVisitTomorrow: {"9:30 AM", "12:00 PM", "1:30 PM", "3:00 PM", "5:00 PM"},
}

var stateChoices = map[State][]Choice{
	StateOptions: {
		ChoiceBrowseProperties,
		ChoiceSearchByLocation,
		ChoiceOngoingProjects,
		ChoicePropertyDetails,
		ChoiceFinancingHelp,
	},
	StatePropertyCategories: {
		ChoiceApartments,
		ChoiceVillas,
		ChoiceCommercialSpaces,
		ChoicePlotsLands,
	},
	StatePropertyFilters: {
		ChoiceFilterByPrice,
		ChoiceFilterByLocation,
		ChoiceFilterBySize,
		ChoiceShowAll,
	},
	StateFilterPrice: {
		ChoicePriceBelow500K,
		ChoicePrice500KTo1M,
		ChoicePriceAbove1M,
	},
	StateFilterLocation: {
		ChoiceDowntown,
		ChoiceSuburban,
		ChoiceBeachfront,
		ChoiceCountryside,
	},
	StateFilterSize: {
		ChoiceSizeUnder1000,
		ChoiceSize1000To2000,
		ChoiceSize2000To3000,
		ChoiceSizeOver3000,
	},
	StateDisplayProperties: {
		ChoiceBackToMenu,
		ChoiceBackToFilters,
		ChoiceContinueBrowsing,
	},
	StatePropertyDetails: {
		ChoiceScheduleVisit,
		ChoiceRequestBrochure,
		ChoiceContactAgent,
	},
	StateScheduleVisit: {
		ChoiceVisitToday,
		ChoiceVisitTomorrow,
		ChoiceVisitChooseDate,
	},
	StateFinancingOptions: {
		ChoiceMortgageCalculator,
		ChoiceFinancialAdvisor,
	},
	StateContactAgent: {
		ChoiceConfirmAgentContact,
	},
	StateAgentInteraction: {
		ChoiceAgentScheduleVisit,
		ChoiceAgentTalk,
		ChoiceAgentContinueBrowsing,
	},
	StateEndInteraction: {
		ChoiceShowMoreProperties,
		ChoiceDoneForNow,
	},
}

// ChoicesFor returns the fixed option set rendered for a state. Free-text
// states return nil.
func ChoicesFor(s State) []Choice {
	return stateChoices[s]
}

func choiceAllowed(s State, c Choice) bool {
	for _, allowed := range stateChoices[s] {
		if allowed == c {
			return true
		}
	}
	return false
}
