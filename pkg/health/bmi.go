package health

import (
	"math"

	"github.com/iwvelando/calckit/pkg/validation"
)

// WHO body mass index categories.
const (
	Underweight = "underweight"
	NormalBMI   = "normal"
	Overweight  = "overweight"
	Obese1      = "obese1"
	Obese2      = "obese2"
	Obese3      = "obese3"
)

const (
	healthyBMIMin = 18.5
	healthyBMIMax = 24.9
)

// BMIInput holds weight in kilograms and height in centimeters.
type BMIInput struct {
	Weight float64 `mapstructure:"weight" calc:"required,unit=kg"`
	Height float64 `mapstructure:"height" calc:"required,unit=cm"`
}

// BMIResult is a body mass index with the healthy weight range for the height.
type BMIResult struct {
	BMI              float64 `json:"bmi" display:"number"`
	Category         string  `json:"category"`
	HealthyWeightMin float64 `json:"healthyWeightMin" display:"number"`
	HealthyWeightMax float64 `json:"healthyWeightMax" display:"number"`
}

// ValidateBMI checks weight and height against plausible human ranges.
func ValidateBMI(in BMIInput) validation.Errors {
	var errs validation.Errors
	if !(in.Weight > 0 && in.Weight <= 500) {
		errs.Add("weight", validation.RuleRange, "weight must be greater than 0 and at most 500 kg")
	}
	errs.Range("height", in.Height, 50, 300)
	return errs
}

// BMICategory maps an index to its WHO category.
func BMICategory(bmi float64) string {
	switch {
	case bmi < healthyBMIMin:
		return Underweight
	case bmi < 25:
		return NormalBMI
	case bmi < 30:
		return Overweight
	case bmi < 35:
		return Obese1
	case bmi < 40:
		return Obese2
	}
	return Obese3
}

// BMI computes the index of a validated input.
func BMI(in BMIInput) BMIResult {
	h2 := math.Pow(in.Height/100, 2)
	bmi := in.Weight / h2
	return BMIResult{
		BMI:              bmi,
		Category:         BMICategory(bmi),
		HealthyWeightMin: healthyBMIMin * h2,
		HealthyWeightMax: healthyBMIMax * h2,
	}
}
