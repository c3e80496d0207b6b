package insurance

import (
	"time"

	"github.com/iwvelando/calckit/pkg/validation"
)

// KASKOBaseRate is the base premium as a share of the car value.
const KASKOBaseRate = 0.06

const oldestInsurableYear = 1990

// Franchise options.
const (
	FranchiseNone  = "none"
	Franchise10000 = "10000"
	Franchise20000 = "20000"
)

var (
	regionCoefficients    = map[string]float64{RegionMoscow: 1.2, RegionSPb: 1.1, RegionOther: 1}
	franchiseCoefficients = map[string]float64{FranchiseNone: 1, Franchise10000: 0.9, Franchise20000: 0.8}
)

// KASKOInput is a comprehensive cover request.
type KASKOInput struct {
	CarValue  float64   `mapstructure:"carValue" calc:"required,unit=currency"`
	CarYear   int       `mapstructure:"carYear" calc:"required"`
	Region    string    `mapstructure:"region" calc:"required,options=moscow|spb|other"`
	Alarm     bool      `mapstructure:"hasAlarmSystem"`
	Franchise string    `mapstructure:"franchise" calc:"options=none|10000|20000"`
	AsOf      time.Time `mapstructure:"asOf" calc:"timestamp"`
	Driver    `mapstructure:",squash"`
}

// SetReference anchors the newest acceptable model year.
func (in *KASKOInput) SetReference(now time.Time) { in.AsOf = now }

// KASKOResult is the premium with each coefficient applied.
type KASKOResult struct {
	BaseRate              float64 `json:"baseRate" display:"percent"`
	RegionCoefficient     float64 `json:"regionCoefficient" display:"number"`
	AgeCoefficient        float64 `json:"ageCoefficient" display:"number"`
	ExperienceCoefficient float64 `json:"experienceCoefficient" display:"number"`
	AlarmCoefficient      float64 `json:"alarmCoefficient" display:"number"`
	FranchiseCoefficient  float64 `json:"franchiseCoefficient" display:"number"`
	TotalCost             float64 `json:"totalCost" display:"currency"`
}

// ValidateKASKO also applies the driver rules shared with OSAGO.
func ValidateKASKO(in KASKOInput) validation.Errors {
	var errs validation.Errors
	errs.Positive("carValue", in.CarValue)
	errs.Range("carYear", float64(in.CarYear), oldestInsurableYear, float64(in.AsOf.Year()+1))
	in.Driver.validate(&errs)
	errs.OneOf("region", in.Region, RegionMoscow, RegionSPb, RegionOther)
	errs.OneOf("franchise", in.Franchise, FranchiseNone, Franchise10000, Franchise20000)
	return errs
}

// KASKO prices a validated request.
func KASKO(in KASKOInput) KASKOResult {
	res := KASKOResult{
		BaseRate:              KASKOBaseRate * 100,
		RegionCoefficient:     regionCoefficients[in.Region],
		AgeCoefficient:        1,
		ExperienceCoefficient: 1,
		AlarmCoefficient:      1,
		FranchiseCoefficient:  franchiseCoefficients[in.Franchise],
	}

	switch {
	case in.Age < 22:
		res.AgeCoefficient = 1.5
	case in.Age <= 30:
		res.AgeCoefficient = 1.2
	}
	switch {
	case in.Experience < 3:
		res.ExperienceCoefficient = 1.3
	case in.Experience <= 10:
		res.ExperienceCoefficient = 1.1
	}
	if in.Alarm {
		res.AlarmCoefficient = 0.9
	}

	res.TotalCost = in.CarValue * KASKOBaseRate * res.RegionCoefficient * res.AgeCoefficient *
		res.ExperienceCoefficient * res.AlarmCoefficient * res.FranchiseCoefficient
	return res
}
