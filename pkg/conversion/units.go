package conversion

import (
	"fmt"
	"sort"

	"github.com/iwvelando/calckit/pkg/validation"
)

// Quantities.
const (
	Length      = "length"
	Mass        = "mass"
	Time        = "time"
	Volume      = "volume"
	Temperature = "temperature"
)

// Factors maps each linear quantity's units to their size in the base unit
// (meter, kilogram, second, liter).
var Factors = map[string]map[string]float64{
	Length: {
		"m": 1, "km": 1000, "cm": 0.01, "mm": 0.001,
		"inch": 0.0254, "foot": 0.3048, "yard": 0.9144, "mile": 1609.344,
	},
	Mass: {
		"kg": 1, "g": 0.001, "mg": 0.000001, "tonne": 1000,
		"lb": 0.45359237, "oz": 0.028349523125,
	},
	Time: {
		"second": 1, "minute": 60, "hour": 3600, "day": 86400, "week": 604800,
	},
	Volume: {
		"l": 1, "ml": 0.001, "m3": 1000, "cm3": 0.001,
		"gallon": 3.785411784, "pint": 0.473176473,
	},
}

// TemperatureUnits are the supported temperature scales.
var TemperatureUnits = []string{"C", "F", "K"}

const absoluteZeroC = -273.15

// RuleBelowAbsoluteZero is reported for temperatures colder than 0 K.
const RuleBelowAbsoluteZero = "belowAbsoluteZero"

// UnitInput converts Value from one unit to another of the same quantity.
type UnitInput struct {
	Quantity string  `mapstructure:"quantity" calc:"required,options=length|mass|time|volume|temperature"`
	Value    float64 `mapstructure:"value" calc:"required"`
	From     string  `mapstructure:"from" calc:"required"`
	To       string  `mapstructure:"to" calc:"required"`
}

// UnitResult is the converted value. Factor is the size of one From unit
// in To units and is omitted for temperatures, which are not proportional.
type UnitResult struct {
	Value   float64 `json:"value" display:"precise"`
	Factor  float64 `json:"factor,omitempty" display:"precise"`
	Example string  `json:"example"`
}

// Units returns the units of quantity in ascending order.
func Units(quantity string) []string {
	if quantity == Temperature {
		return append([]string(nil), TemperatureUnits...)
	}
	units := make([]string, 0, len(Factors[quantity]))
	for u := range Factors[quantity] {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}

// ValidateUnit reports unknown units and impossible values.
func ValidateUnit(in UnitInput) validation.Errors {
	var errs validation.Errors
	units := Units(in.Quantity)
	if len(units) == 0 {
		errs.OneOf("quantity", in.Quantity, Length, Mass, Time, Volume, Temperature)
		return errs
	}
	errs.OneOf("from", in.From, units...)
	errs.OneOf("to", in.To, units...)
	if !errs.Valid() {
		return errs
	}

	if in.Quantity != Temperature {
		errs.NonNegative("value", in.Value)
	} else if toCelsius(in.Value, in.From) < absoluteZeroC {
		errs.Add("value", RuleBelowAbsoluteZero, "temperature cannot be below absolute zero")
	}
	return errs
}

// ConvertUnit converts a validated value.
func ConvertUnit(in UnitInput) UnitResult {
	if in.Quantity == Temperature {
		one := fromCelsius(toCelsius(1, in.From), in.To)
		return UnitResult{
			Value:   fromCelsius(toCelsius(in.Value, in.From), in.To),
			Example: fmt.Sprintf("1 °%s = %s °%s", in.From, num(round6(one)), in.To),
		}
	}

	rates := Factors[in.Quantity]
	factor := rates[in.From] / rates[in.To]
	return UnitResult{
		Value:   in.Value * factor,
		Factor:  factor,
		Example: fmt.Sprintf("1 %s = %s %s", in.From, num(round6(factor)), in.To),
	}
}

func toCelsius(v float64, unit string) float64 {
	switch unit {
	case "F":
		return (v - 32) * 5 / 9
	case "K":
		return v + absoluteZeroC
	}
	return v
}

func fromCelsius(c float64, unit string) float64 {
	switch unit {
	case "F":
		return c*9/5 + 32
	case "K":
		return c - absoluteZeroC
	}
	return c
}
