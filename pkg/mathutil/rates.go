// Package mathutil holds the rate and percentage conversions shared by the
// financial calculators. Percent values are in percent units (12 means 12%).
package mathutil

import (
	"math"

	"github.com/iwvelando/calckit/pkg/constants"
)

// FromPercent converts a percent value into a decimal fraction.
func FromPercent(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// ToPercent converts a decimal fraction into percent units.
func ToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}

// MonthlyRate converts an annual percentage rate into a monthly decimal rate.
func MonthlyRate(annualPercent float64) float64 {
	return FromPercent(annualPercent) / constants.MonthsPerYear
}

// EffectiveAnnualRate returns the annual yield, in percent, of a nominal
// percent rate compounded periods times a year.
func EffectiveAnnualRate(nominalPercent, periods float64) float64 {
	return ToPercent(math.Pow(1+FromPercent(nominalPercent)/periods, periods) - 1)
}

// Share returns value as a percentage of total, or 0 when total is 0.
func Share(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return ToPercent(value / total)
}
