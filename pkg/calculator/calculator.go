// Package calculator defines the contract every calculator in calckit
// follows: a typed input record decoded from a generic field map, a pure
// validator, and a pure compute function.
package calculator

import (
	"errors"
	"time"

	"github.com/iwvelando/calckit/pkg/validation"
)

var (
	// ErrUnknownCalculator is returned when a calculator ID is not registered.
	ErrUnknownCalculator = errors.New("unknown calculator")

	// ErrCalculation wraps failures inside a compute function that slipped
	// past validation. It always indicates a validator bug.
	ErrCalculation = errors.New("calculation error")
)

// Category groups calculators for listing.
type Category string

const (
	CategoryFinancial    Category = "financial"
	CategoryConstruction Category = "construction"
	CategoryMedical      Category = "medical"
	CategoryElectrical   Category = "electrical"
	CategoryTime         Category = "time"
	CategoryInsurance    Category = "insurance"
	CategoryConversion   Category = "conversion"
)

// Input maps a field name to a scalar value: a number, a string enum, a
// bool, a date string or a list of strings. An Input is never modified by
// the package.
type Input map[string]any

// Outcome is the result of evaluating one Input.
type Outcome struct {
	Calculator string            `json:"calculator"`
	Valid      bool              `json:"valid"`
	Errors     validation.Errors `json:"errors,omitempty"`
	Result     any               `json:"result,omitempty"`
}

// Definition is a registered calculator.
type Definition interface {
	ID() string
	Category() Category
	Summary() string
	Fields() []Field

	// Validate checks in against every declared constraint. now is the
	// reference instant for date-relative rules.
	Validate(in Input, now time.Time) validation.Errors

	// Evaluate validates in and, only when valid, computes the result.
	Evaluate(in Input, now time.Time) Outcome
}

// ReferenceSetter is implemented by input records whose rules or results
// depend on the current instant. The reference is applied before field
// decoding, so an explicit "asOf" field in the Input still wins.
type ReferenceSetter interface {
	SetReference(now time.Time)
}
