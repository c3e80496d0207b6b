package finance

import (
	"github.com/iwvelando/calckit/pkg/calculator"
	"go.uber.org/zap"
)

// Calculator identifiers.
const (
	CompoundInterestID = "compound-interest"
	DepositID          = "deposit"
)

// Calculators returns the compound interest and deposit definitions.
func Calculators(logger *zap.Logger) []calculator.Definition {
	gp := NewGrowthProcessor(logger)
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[CompoundInput, CompoundResult]{
			ID:       CompoundInterestID,
			Category: calculator.CategoryFinancial,
			Summary:  "Compound interest with regular contributions",
			Defaults: func() CompoundInput { return CompoundInput{Compounding: Monthly} },
			Validate: ValidateCompound,
			Compute:  gp.Compound,
		}),
		calculator.MustNew(calculator.Spec[DepositInput, DepositResult]{
			ID:       DepositID,
			Category: calculator.CategoryFinancial,
			Summary:  "Bank deposit income with capitalization",
			Defaults: func() DepositInput { return DepositInput{Capitalization: CapitalizationMonthly} },
			Validate: ValidateDeposit,
			Compute:  gp.Deposit,
		}),
	}
}
