// Package health provides medical and biological calculators: blood
// pressure classification, body mass index, heart rate zones, ovulation and
// pregnancy dating.
package health

import (
	"github.com/iwvelando/calckit/pkg/validation"
)

// Blood pressure categories, following the American Heart Association
// thresholds plus hypotension.
const (
	Hypotension    = "hypotension"
	Normal         = "normal"
	Elevated       = "elevated"
	Stage1         = "hypertension1"
	Stage2         = "hypertension2"
	CrisisCategory = "hypertensiveCrisis"
)

var riskLevels = map[string]string{
	Hypotension:    "low",
	Normal:         "low",
	Elevated:       "moderate",
	Stage1:         "high",
	Stage2:         "veryHigh",
	CrisisCategory: "critical",
}

// Range is an inclusive interval.
type Range struct {
	Min float64 `json:"min" display:"number"`
	Max float64 `json:"max" display:"number"`
}

type ageBand struct {
	minAge, maxAge int
	systolic       Range
	diastolic      Range
	comment        string
}

var ageBands = []ageBand{
	{20, 30, Range{110, 125}, Range{70, 80}, "excellent"},
	{30, 40, Range{120, 130}, Range{75, 85}, "normal"},
	{40, 50, Range{125, 135}, Range{80, 88}, "slightIncrease"},
	{50, 60, Range{130, 140}, Range{80, 90}, "monitor"},
	{60, 120, Range{135, 145}, Range{85, 90}, "moderateIncrease"},
}

var defaultBand = ageBand{systolic: Range{120, 140}, diastolic: Range{80, 90}, comment: "general"}

// BloodPressureInput is a single reading.
type BloodPressureInput struct {
	Age       int     `mapstructure:"age" calc:"required,unit=years"`
	Systolic  float64 `mapstructure:"systolic" calc:"required,unit=mmHg"`
	Diastolic float64 `mapstructure:"diastolic" calc:"required,unit=mmHg"`
}

// BloodPressureResult classifies a reading.
type BloodPressureResult struct {
	Category        string `json:"category"`
	RiskLevel       string `json:"riskLevel"`
	NormalSystolic  Range  `json:"normalSystolic"`
	NormalDiastolic Range  `json:"normalDiastolic"`
	AgeComment      string `json:"ageComment"`
}

// RuleSystolicNotAbove is reported when the systolic value does not exceed the diastolic one.
const RuleSystolicNotAbove = "notAboveDiastolic"

// ValidateBloodPressure reports every violated constraint.
func ValidateBloodPressure(in BloodPressureInput) validation.Errors {
	var errs validation.Errors
	errs.Range("age", float64(in.Age), 1, 120)
	errs.Range("systolic", in.Systolic, 50, 300)
	errs.Range("diastolic", in.Diastolic, 30, 200)
	if errs.Valid() && in.Systolic <= in.Diastolic {
		errs.Add("systolic", RuleSystolicNotAbove, "systolic pressure must be higher than diastolic")
	}
	return errs
}

// ClassifyBloodPressure returns the category of a systolic/diastolic pair.
// The higher of the two readings decides.
func ClassifyBloodPressure(systolic, diastolic float64) string {
	switch {
	case systolic > 180 || diastolic > 120:
		return CrisisCategory
	case systolic >= 140 || diastolic >= 90:
		return Stage2
	case systolic >= 130 || diastolic >= 80:
		return Stage1
	case systolic < 90 || diastolic < 60:
		return Hypotension
	case systolic >= 120:
		return Elevated
	}
	return Normal
}

func bandFor(age int) ageBand {
	for _, b := range ageBands {
		if age >= b.minAge && age <= b.maxAge {
			return b
		}
	}
	return defaultBand
}

// BloodPressure classifies a validated reading.
func BloodPressure(in BloodPressureInput) BloodPressureResult {
	category := ClassifyBloodPressure(in.Systolic, in.Diastolic)
	band := bandFor(in.Age)
	return BloodPressureResult{
		Category:        category,
		RiskLevel:       riskLevels[category],
		NormalSystolic:  band.systolic,
		NormalDiastolic: band.diastolic,
		AgeComment:      band.comment,
	}
}
