// Package electrical provides wiring calculators.
package electrical

import (
	"math"

	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/validation"
)

// CableSectionID identifies the cable cross-section calculator.
const CableSectionID = "cable-section"

// Conductor materials.
const (
	Copper   = "copper"
	Aluminum = "aluminum"
)

// Conductor holds the physical constants of a material.
type Conductor struct {
	// Resistivity at 20 °C in Ω·mm²/m.
	Resistivity float64
	// TempCoefficient is the relative resistance change per °C.
	TempCoefficient float64
	// MaxCurrentDensity in A/mm².
	MaxCurrentDensity float64
	// Density in g/cm³.
	Density float64
	// PricePerKg in USD.
	PricePerKg float64
}

// Conductors lists the supported materials.
var Conductors = map[string]Conductor{
	Copper:   {Resistivity: 0.0175, TempCoefficient: 0.004, MaxCurrentDensity: 4, Density: 8.9, PricePerKg: 8},
	Aluminum: {Resistivity: 0.0283, TempCoefficient: 0.004, MaxCurrentDensity: 3, Density: 2.7, PricePerKg: 3},
}

// StandardSections are the manufactured cross-sections in mm².
var StandardSections = []float64{1, 1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300, 400, 500}

const referenceTemperature = 20.0

// CableInput sizes a cable either from the load power (kW) or from the
// current (A), selected by Mode.
type CableInput struct {
	Mode           string  `mapstructure:"calculationType" calc:"options=power|current"`
	Power          float64 `mapstructure:"power" calc:"unit=kW"`
	Current        float64 `mapstructure:"current" calc:"unit=A"`
	Voltage        float64 `mapstructure:"voltage" calc:"unit=V"`
	Length         float64 `mapstructure:"length" calc:"required,unit=m"`
	Phase          string  `mapstructure:"phaseType" calc:"options=single|three"`
	PowerFactor    float64 `mapstructure:"powerFactor"`
	Material       string  `mapstructure:"material" calc:"options=copper|aluminum"`
	Temperature    float64 `mapstructure:"temperature" calc:"unit=°C"`
	AllowedDropPct float64 `mapstructure:"voltageDrop" calc:"unit=%"`
}

// CableResult is the recommended section and the cable's characteristics
// at the chosen standard section.
type CableResult struct {
	Current            float64 `json:"current" display:"number"`
	RecommendedSection float64 `json:"recommendedSection" display:"number"`
	StandardSection    float64 `json:"standardSection" display:"number"`
	Oversize           bool    `json:"oversize"`
	CurrentDensity     float64 `json:"currentDensity" display:"number"`
	Resistance         float64 `json:"resistance" display:"number"`
	VoltageDrop        float64 `json:"voltageDrop" display:"number"`
	VoltageDropPercent float64 `json:"voltageDropPercent" display:"percent"`
	WeightKg           float64 `json:"weight" display:"number"`
	Cost               float64 `json:"cost" display:"currency,USD"`
}

// ValidateCable reports every violated constraint.
func ValidateCable(in CableInput) validation.Errors {
	var errs validation.Errors
	errs.OneOf("calculationType", in.Mode, "power", "current")
	switch in.Mode {
	case "power":
		errs.Positive("power", in.Power)
	case "current":
		errs.Positive("current", in.Current)
	}
	errs.Positive("voltage", in.Voltage)
	errs.Positive("length", in.Length)
	errs.OneOf("phaseType", in.Phase, "single", "three")
	if !(in.PowerFactor > 0 && in.PowerFactor <= 1) {
		errs.Add("powerFactor", validation.RuleRange, "power factor must be greater than 0 and at most 1")
	}
	errs.OneOf("material", in.Material, Copper, Aluminum)
	errs.Range("temperature", in.Temperature, -50, 100)
	if !(in.AllowedDropPct > 0 && in.AllowedDropPct <= 100) {
		errs.Add("voltageDrop", validation.RuleRange, "allowed voltage drop must be greater than 0 and at most 100 percent")
	}
	return errs
}

// LoadCurrent returns the current drawn by a load of kw kilowatts.
func LoadCurrent(kw, voltage, powerFactor float64, threePhase bool) float64 {
	watts := kw * 1000
	if threePhase {
		return watts / (math.Sqrt(3) * voltage * powerFactor)
	}
	return watts / (voltage * powerFactor)
}

// StandardSection returns the smallest standard section of at least mm2,
// or mm2 itself with ok false when it exceeds every standard size.
func StandardSection(mm2 float64) (section float64, ok bool) {
	for _, s := range StandardSections {
		if s >= mm2 {
			return s, true
		}
	}
	return mm2, false
}

// Cable sizes a validated request. The section must satisfy both the
// material's current density limit and the allowed voltage drop over the
// two-wire run.
func Cable(in CableInput) CableResult {
	c := Conductors[in.Material]

	current := in.Current
	if in.Mode == "power" {
		current = LoadCurrent(in.Power, in.Voltage, in.PowerFactor, in.Phase == "three")
	}

	rho := c.Resistivity * (1 + c.TempCoefficient*(in.Temperature-referenceTemperature))
	byDensity := current / c.MaxCurrentDensity
	byDrop := 2 * rho * in.Length * current / (in.Voltage * in.AllowedDropPct / 100)
	recommended := math.Max(byDensity, byDrop)

	section, ok := StandardSection(recommended)
	resistance := rho * in.Length / section
	drop := 2 * resistance * current
	weight := section * in.Length * c.Density / 1000

	return CableResult{
		Current:            current,
		RecommendedSection: recommended,
		StandardSection:    section,
		Oversize:           !ok,
		CurrentDensity:     current / section,
		Resistance:         resistance,
		VoltageDrop:        drop,
		VoltageDropPercent: drop / in.Voltage * 100,
		WeightKg:           weight,
		Cost:               weight * c.PricePerKg,
	}
}

// Calculators returns the electrical calculator definitions.
func Calculators() []calculator.Definition {
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[CableInput, CableResult]{
			ID:       CableSectionID,
			Category: calculator.CategoryElectrical,
			Summary:  "Cable cross-section by current density and voltage drop",
			Defaults: func() CableInput {
				return CableInput{
					Mode:           "power",
					Voltage:        220,
					Phase:          "single",
					PowerFactor:    0.8,
					Material:       Copper,
					Temperature:    25,
					AllowedDropPct: 3,
				}
			},
			Validate: ValidateCable,
			Compute:  Cable,
		}),
	}
}
