// Package insurance provides car insurance premium calculators: OSAGO
// (compulsory third-party liability) and KASKO (comprehensive cover).
package insurance

import (
	"github.com/iwvelando/calckit/pkg/validation"
)

// Regions with their own tariffs.
const (
	RegionMoscow = "moscow"
	RegionSPb    = "spb"
	RegionOther  = "other"
)

const (
	minDriverAge = 18
	maxDriverAge = 100
	// licenseAge is the earliest age driving experience can start.
	licenseAge = 16
)

// RuleExceedsAge is reported when driving experience is longer than the
// driver could have held a license.
const RuleExceedsAge = "exceedsAge"

// Driver describes the insured driver.
type Driver struct {
	Age        int `mapstructure:"driverAge" calc:"required,unit=years"`
	Experience int `mapstructure:"drivingExperience" calc:"unit=years"`
}

func (d Driver) validate(errs *validation.Errors) {
	ageValid := d.Age >= minDriverAge && d.Age <= maxDriverAge
	errs.Range("driverAge", float64(d.Age), minDriverAge, maxDriverAge)
	errs.NonNegative("drivingExperience", float64(d.Experience))
	if ageValid && d.Experience > d.Age-licenseAge {
		errs.Add("drivingExperience", RuleExceedsAge,
			"driving experience cannot exceed age minus %d years", licenseAge)
	}
}
