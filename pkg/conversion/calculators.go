package conversion

import (
	"math"

	"github.com/iwvelando/calckit/pkg/calculator"
)

// Calculator IDs.
const (
	PercentID = "percent"
	UnitID    = "unit-conversion"
)

// Calculators returns the conversion calculator definitions.
func Calculators() []calculator.Definition {
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[PercentInput, PercentResult]{
			ID:       PercentID,
			Category: calculator.CategoryConversion,
			Summary:  "Percent of a number, percentage share and percent change",
			Defaults: func() PercentInput {
				return PercentInput{Operation: PercentOf}
			},
			Validate: ValidatePercent,
			Compute:  Percent,
		}),
		calculator.MustNew(calculator.Spec[UnitInput, UnitResult]{
			ID:       UnitID,
			Category: calculator.CategoryConversion,
			Summary:  "Length, mass, time, volume and temperature unit conversion",
			Validate: ValidateUnit,
			Compute:  ConvertUnit,
		}),
	}
}

// round6 trims float noise for the human readable examples.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
