package insurance

import (
	"github.com/iwvelando/calckit/pkg/validation"
)

// OSAGOBaseRate is the base tariff in rubles.
const OSAGOBaseRate = 5000.0

// Number of drivers allowed by the policy.
const (
	DriversOne       = "one"
	DriversSeveral   = "several"
	DriversUnlimited = "unlimited"
)

var (
	territoryCoefficients = map[string]float64{RegionMoscow: 2, RegionSPb: 1.8, RegionOther: 1}
	driversCoefficients   = map[string]float64{DriversOne: 1, DriversSeveral: 1.2, DriversUnlimited: 1.8}
)

// BonusMalusClasses are the accepted bonus-malus (KBM) coefficients.
var BonusMalusClasses = []float64{0.5, 0.6, 0.65, 0.7, 0.8, 0.9, 1.0, 1.4, 1.5, 1.6, 1.7, 2.0, 2.45}

// OSAGOInput is a compulsory liability insurance request.
type OSAGOInput struct {
	Region      string  `mapstructure:"region" calc:"required,options=moscow|spb|other"`
	EnginePower float64 `mapstructure:"enginePower" calc:"required,unit=hp"`
	Drivers     string  `mapstructure:"driversCount" calc:"options=one|several|unlimited"`
	BonusMalus  float64 `mapstructure:"bonusMalusCoefficient"`
	Driver      `mapstructure:",squash"`
}

// OSAGOResult is the premium with each coefficient applied.
type OSAGOResult struct {
	BaseRate              float64 `json:"baseRate" display:"currency"`
	TerritoryCoefficient  float64 `json:"territoryCoefficient" display:"number"`
	AgeExperienceCoeff    float64 `json:"ageExperienceCoefficient" display:"number"`
	PowerCoefficient      float64 `json:"powerCoefficient" display:"number"`
	DriversCoefficient    float64 `json:"driversCoefficient" display:"number"`
	BonusMalusCoefficient float64 `json:"bonusMalusCoefficient" display:"number"`
	TotalCost             float64 `json:"totalCost" display:"currency"`
}

// ValidateOSAGO reports every violated constraint.
func ValidateOSAGO(in OSAGOInput) validation.Errors {
	var errs validation.Errors
	errs.OneOf("region", in.Region, RegionMoscow, RegionSPb, RegionOther)
	errs.Positive("enginePower", in.EnginePower)
	in.Driver.validate(&errs)
	errs.OneOf("driversCount", in.Drivers, DriversOne, DriversSeveral, DriversUnlimited)

	known := false
	for _, kbm := range BonusMalusClasses {
		if in.BonusMalus == kbm {
			known = true
			break
		}
	}
	if !known {
		errs.Add("bonusMalusCoefficient", validation.RuleInvalid, "%g is not a bonus-malus class", in.BonusMalus)
	}
	return errs
}

// PowerCoefficient maps engine horsepower to its tariff coefficient.
func PowerCoefficient(hp float64) float64 {
	switch {
	case hp <= 70:
		return 0.6
	case hp <= 100:
		return 1.0
	case hp <= 120:
		return 1.1
	case hp <= 150:
		return 1.2
	}
	return 1.4
}

// OSAGO prices a validated request:
// base × territory × age/experience × power × drivers × bonus-malus.
func OSAGO(in OSAGOInput) OSAGOResult {
	res := OSAGOResult{
		BaseRate:              OSAGOBaseRate,
		TerritoryCoefficient:  territoryCoefficients[in.Region],
		AgeExperienceCoeff:    1,
		PowerCoefficient:      PowerCoefficient(in.EnginePower),
		DriversCoefficient:    driversCoefficients[in.Drivers],
		BonusMalusCoefficient: in.BonusMalus,
	}
	if in.Age < 22 && in.Experience < 3 {
		res.AgeExperienceCoeff = 1.8
	}
	res.TotalCost = res.BaseRate * res.TerritoryCoefficient * res.AgeExperienceCoeff *
		res.PowerCoefficient * res.DriversCoefficient * res.BonusMalusCoefficient
	return res
}
