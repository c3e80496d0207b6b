package health

import (
	"github.com/iwvelando/calckit/pkg/calculator"
)

// Calculator identifiers.
const (
	BloodPressureID = "blood-pressure"
	BMIID           = "bmi"
	HeartRateID     = "heart-rate"
	OvulationID     = "ovulation"
	PregnancyID     = "pregnancy"
)

// Calculators returns the medical calculator definitions.
func Calculators() []calculator.Definition {
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[BloodPressureInput, BloodPressureResult]{
			ID:       BloodPressureID,
			Category: calculator.CategoryMedical,
			Summary:  "Blood pressure category and normal range for age",
			Validate: ValidateBloodPressure,
			Compute:  BloodPressure,
		}),
		calculator.MustNew(calculator.Spec[BMIInput, BMIResult]{
			ID:       BMIID,
			Category: calculator.CategoryMedical,
			Summary:  "Body mass index",
			Validate: ValidateBMI,
			Compute:  BMI,
		}),
		calculator.MustNew(calculator.Spec[HeartRateInput, HeartRateResult]{
			ID:       HeartRateID,
			Category: calculator.CategoryMedical,
			Summary:  "Maximum heart rate and training zones",
			Validate: ValidateHeartRate,
			Compute:  HeartRate,
		}),
		calculator.MustNew(calculator.Spec[OvulationInput, OvulationResult]{
			ID:       OvulationID,
			Category: calculator.CategoryMedical,
			Summary:  "Ovulation date and fertile window",
			Defaults: func() OvulationInput { return OvulationInput{CycleLength: 28, PeriodLength: 5} },
			Validate: ValidateOvulation,
			Compute:  Ovulation,
		}),
		calculator.MustNew(calculator.Spec[PregnancyInput, PregnancyResult]{
			ID:       PregnancyID,
			Category: calculator.CategoryMedical,
			Summary:  "Due date and gestational age",
			Defaults: func() PregnancyInput { return PregnancyInput{Method: MethodLMP} },
			Validate: ValidatePregnancy,
			Compute:  Pregnancy,
		}),
	}
}
