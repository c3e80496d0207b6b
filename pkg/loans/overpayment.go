package loans

import (
	"github.com/iwvelando/calckit/pkg/mathutil"
)

// Overpayment is the cost of borrowing beyond the financed amount, with the
// savings an additional monthly payment buys over the same loan without it.
type Overpayment struct {
	FinancedAmount     float64 `json:"financedAmount" display:"currency"`
	MonthlyPayment     float64 `json:"monthlyPayment" display:"currency"`
	TotalPayments      float64 `json:"totalPayments" display:"currency"`
	EffectiveTerm      int     `json:"effectiveTerm" display:"integer"`
	OverpaymentAmount  float64 `json:"overpaymentAmount" display:"currency"`
	OverpaymentPercent float64 `json:"overpaymentPercentage" display:"percent"`
	TotalCost          float64 `json:"totalCost" display:"currency"`
	PrincipalPaid      float64 `json:"principalPaid" display:"currency"`
	BaselineInterest   float64 `json:"baselineInterest" display:"currency"`
	InterestSaved      float64 `json:"interestSaved" display:"currency"`
	MonthsSaved        int     `json:"monthsSaved" display:"integer"`
}

// CalculateOverpayment compares in against the same loan repaid without an
// additional payment.
func (g *AmortizationScheduleGenerator) CalculateOverpayment(in Input) Overpayment {
	actual := g.Calculate(in)

	baseline := actual
	if in.AdditionalPayment > 0 {
		plain := in
		plain.AdditionalPayment = 0
		baseline = g.Calculate(plain)
	}

	financed := in.Financed()
	return Overpayment{
		FinancedAmount:     financed,
		MonthlyPayment:     actual.MonthlyPayment,
		TotalPayments:      actual.TotalPayments,
		EffectiveTerm:      actual.EffectiveTerm,
		OverpaymentAmount:  actual.TotalInterest,
		OverpaymentPercent: mathutil.Share(actual.TotalInterest, financed),
		TotalCost:          in.Amount + actual.TotalInterest,
		PrincipalPaid:      actual.TotalPayments - actual.TotalInterest,
		BaselineInterest:   baseline.TotalInterest,
		InterestSaved:      baseline.TotalInterest - actual.TotalInterest,
		MonthsSaved:        baseline.EffectiveTerm - actual.EffectiveTerm,
	}
}
