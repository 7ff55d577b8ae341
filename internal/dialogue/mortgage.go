package dialogue

import (
	"math"
	"strconv"
	"strings"
)

// MortgageBreakdown is the monthly payment estimate, rounded to whole
// currency units.
type MortgageBreakdown struct {
	MonthlyPayment    int64 `json:"monthly_payment"`
	PrincipalInterest int64 `json:"principal_interest"`
	Taxes             int64 `json:"taxes"`
	Insurance         int64 `json:"insurance"`
}

// Annual estimate rates as a fraction of home value.
const (
	taxRate       = 0.005
	insuranceRate = 0.002
)

// CalculateMortgage computes the monthly payment for a loan of
// homePrice-downPayment over termYears at the given annual rate. Taxes and
// insurance are estimated from the home value. A zero rate amortizes
// linearly instead of dividing by zero.
func CalculateMortgage(homePrice, downPayment float64, termYears int, annualRate float64) MortgageBreakdown {
	principal := homePrice - downPayment
	months := float64(termYears) * 12
	monthlyRate := annualRate / 100 / 12

	var principalInterest float64
	switch {
	case months <= 0:
		principalInterest = 0
	case monthlyRate == 0:
		principalInterest = principal / months
	default:
		x := math.Pow(1+monthlyRate, months)
		principalInterest = principal * (monthlyRate * x) / (x - 1)
	}

	taxes := homePrice * taxRate / 12
	insurance := homePrice * insuranceRate / 12

	return MortgageBreakdown{
		MonthlyPayment:    int64(math.Round(principalInterest + taxes + insurance)),
		PrincipalInterest: int64(math.Round(principalInterest)),
		Taxes:             int64(math.Round(taxes)),
		Insurance:         int64(math.Round(insurance)),
	}
}

// formatCurrency renders a whole-dollar amount like $1,250,000
func formatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
