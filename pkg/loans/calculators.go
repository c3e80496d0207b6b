package loans

import (
	"github.com/iwvelando/calckit/pkg/calculator"
	"go.uber.org/zap"
)

// Calculator identifiers.
const (
	LoanID        = "loan"
	OverpaymentID = "loan-overpayment"
)

func defaults() Input {
	return Input{PaymentType: string(Annuity)}
}

// Calculators returns the loan and loan-overpayment definitions.
func Calculators(logger *zap.Logger) []calculator.Definition {
	g := NewAmortizationScheduleGenerator(logger)
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[Input, Result]{
			ID:       LoanID,
			Category: calculator.CategoryFinancial,
			Summary:  "Loan payments and amortization schedule",
			Defaults: defaults,
			Validate: Validate,
			Compute:  g.Calculate,
		}),
		calculator.MustNew(calculator.Spec[Input, Overpayment]{
			ID:       OverpaymentID,
			Category: calculator.CategoryFinancial,
			Summary:  "Total interest overpaid and savings from extra payments",
			Defaults: defaults,
			Validate: Validate,
			Compute:  g.CalculateOverpayment,
		}),
	}
}
