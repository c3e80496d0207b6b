// Package construction provides building material calculators.
package construction

import (
	"math"
	"sort"

	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/validation"
)

// ConcreteID identifies the concrete mix calculator.
const ConcreteID = "concrete"

// cementBagKg is the mass of a standard cement bag.
const cementBagKg = 50

// Grade is the reference composition of one cubic meter of concrete.
type Grade struct {
	CementKg         float64
	SandKg           float64
	GravelKg         float64
	WaterCementRatio float64
}

// Grades lists the supported concrete grades.
var Grades = map[string]Grade{
	"M100": {220, 780, 1080, 0.68},
	"M150": {260, 740, 1080, 0.66},
	"M200": {280, 730, 1250, 0.63},
	"M250": {330, 720, 1250, 0.58},
	"M300": {380, 700, 1250, 0.55},
	"M400": {440, 670, 1250, 0.5},
}

// GradeNames returns the supported grades in ascending order.
func GradeNames() []string {
	names := make([]string, 0, len(Grades))
	for name := range Grades {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConcreteInput is a mix request. Volume is in cubic meters unless
// VolumeUnit is "liters".
type ConcreteInput struct {
	Volume           float64 `mapstructure:"volume" calc:"required"`
	VolumeUnit       string  `mapstructure:"volumeUnit" calc:"options=m3|liters"`
	Grade            string  `mapstructure:"grade" calc:"required,options=M100|M150|M200|M250|M300|M400"`
	CementProportion float64 `mapstructure:"cementProportion"`
	SandProportion   float64 `mapstructure:"sandProportion"`
	GravelProportion float64 `mapstructure:"gravelProportion"`
	WaterCementRatio float64 `mapstructure:"waterCementRatio"`
}

// VolumeM3 returns the volume in cubic meters.
func (in ConcreteInput) VolumeM3() float64 {
	if in.VolumeUnit == "liters" {
		return in.Volume / 1000
	}
	return in.Volume
}

// ConcreteResult lists the materials for the requested volume.
type ConcreteResult struct {
	VolumeM3    float64 `json:"volumeM3" display:"number"`
	CementKg    float64 `json:"cementKg" display:"number"`
	CementBags  int     `json:"cementBags" display:"integer"`
	SandKg      float64 `json:"sandKg" display:"number"`
	GravelKg    float64 `json:"gravelKg" display:"number"`
	WaterLiters float64 `json:"waterLiters" display:"number"`
}

// ValidateConcrete checks volume, grade and mix proportions.
func ValidateConcrete(in ConcreteInput) validation.Errors {
	var errs validation.Errors
	errs.Positive("volume", in.Volume)
	errs.OneOf("volumeUnit", in.VolumeUnit, "m3", "liters")
	if _, ok := Grades[in.Grade]; !ok {
		errs.Add("grade", validation.RuleInvalid, "unsupported concrete grade %q", in.Grade)
	}
	errs.Positive("cementProportion", in.CementProportion)
	errs.Positive("sandProportion", in.SandProportion)
	errs.Positive("gravelProportion", in.GravelProportion)
	if !(in.WaterCementRatio > 0 && in.WaterCementRatio <= 1) {
		errs.Add("waterCementRatio", validation.RuleRange, "water-cement ratio must be greater than 0 and at most 1")
	}
	return errs
}

// Concrete computes the materials of a validated request. Each dry
// component is the grade's reference mass weighted by its share of the
// proportions; water follows the cement by the water-cement ratio.
func Concrete(in ConcreteInput) ConcreteResult {
	g := Grades[in.Grade]
	volume := in.VolumeM3()
	total := in.CementProportion + in.SandProportion + in.GravelProportion

	cement := g.CementKg * in.CementProportion / total * volume
	return ConcreteResult{
		VolumeM3:    volume,
		CementKg:    cement,
		CementBags:  int(math.Ceil(cement / cementBagKg)),
		SandKg:      g.SandKg * in.SandProportion / total * volume,
		GravelKg:    g.GravelKg * in.GravelProportion / total * volume,
		WaterLiters: cement * in.WaterCementRatio,
	}
}

// Calculators returns the construction calculator definitions.
func Calculators() []calculator.Definition {
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[ConcreteInput, ConcreteResult]{
			ID:       ConcreteID,
			Category: calculator.CategoryConstruction,
			Summary:  "Cement, sand, gravel and water for a concrete mix",
			Defaults: func() ConcreteInput {
				return ConcreteInput{VolumeUnit: "m3", CementProportion: 1, SandProportion: 2, GravelProportion: 4, WaterCementRatio: 0.5}
			},
			Validate: ValidateConcrete,
			Compute:  Concrete,
		}),
	}
}
