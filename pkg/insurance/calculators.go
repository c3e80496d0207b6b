package insurance

import (
	"github.com/iwvelando/calckit/pkg/calculator"
)

// Calculator identifiers.
const (
	OSAGOID = "osago"
	KASKOID = "kasko"
)

// Calculators returns the insurance calculator definitions.
func Calculators() []calculator.Definition {
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[OSAGOInput, OSAGOResult]{
			ID:       OSAGOID,
			Category: calculator.CategoryInsurance,
			Summary:  "Compulsory motor liability insurance premium",
			Defaults: func() OSAGOInput { return OSAGOInput{Drivers: DriversOne, BonusMalus: 1} },
			Validate: ValidateOSAGO,
			Compute:  OSAGO,
		}),
		calculator.MustNew(calculator.Spec[KASKOInput, KASKOResult]{
			ID:       KASKOID,
			Category: calculator.CategoryInsurance,
			Summary:  "Comprehensive car insurance premium",
			Defaults: func() KASKOInput { return KASKOInput{Franchise: FranchiseNone} },
			Validate: ValidateKASKO,
			Compute:  KASKO,
		}),
	}
}
