// Package validation provides the error vocabulary shared by every
// calculator validator.
//
// A validator never fails at the system level: it inspects an input record
// and returns the list of constraints that record violates. An empty list
// means the input is safe to calculate. Each entry carries a stable code of
// the form "<field>.<rule>" so that callers can look up localized text, and
// an English message for callers that cannot.
package validation

import (
	"fmt"
	"math"
	"strings"
)

// Common rule names.
const (
	RuleRequired = "required"
	RulePositive = "positive"
	RuleRange    = "range"
	RuleNegative = "negative"
	RuleInvalid  = "invalid"
	RuleFuture   = "future"
	RuleTooOld   = "tooOld"
)

// Error is a single violated constraint.
type Error struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

// Errors is an ordered list of violations. A nil or empty list is valid.
type Errors []Error

// Add appends a violation of rule on field.
func (errs *Errors) Add(field, rule, format string, args ...any) {
	*errs = append(*errs, Error{
		Field:   field,
		Code:    field + "." + rule,
		Message: fmt.Sprintf(format, args...),
	})
}

// Valid reports whether no constraint was violated.
func (errs Errors) Valid() bool {
	return len(errs) == 0
}

// Codes returns the error identifiers in order.
func (errs Errors) Codes() []string {
	codes := make([]string, 0, len(errs))
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	return codes
}

// Has reports whether code is among the violations.
func (errs Errors) Has(code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Messages returns the human-readable messages in order.
func (errs Errors) Messages() []string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Err returns errs as an error, or nil when valid.
func (errs Errors) Err() error {
	if errs.Valid() {
		return nil
	}
	return errs
}

func (errs Errors) Error() string {
	return "invalid input: " + strings.Join(errs.Messages(), "; ")
}

// Positive records field.positive unless 0 < value < +Inf.
func (errs *Errors) Positive(field string, value float64) {
	if !(value > 0) || math.IsInf(value, 1) {
		errs.Add(field, RulePositive, "%s must be greater than 0", field)
	}
}

// NonNegative records field.negative unless value is finite and >= 0.
func (errs *Errors) NonNegative(field string, value float64) {
	if !(value >= 0) || math.IsInf(value, 1) {
		errs.Add(field, RuleNegative, "%s cannot be negative", field)
	}
}

// Range records field.range unless min <= value <= max.
func (errs *Errors) Range(field string, value, min, max float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < min || value > max {
		errs.Add(field, RuleRange, "%s must be between %g and %g", field, min, max)
	}
}

// OneOf records field.invalid unless value is among options.
func (errs *Errors) OneOf(field, value string, options ...string) {
	for _, opt := range options {
		if value == opt {
			return
		}
	}
	errs.Add(field, RuleInvalid, "%s must be one of %s", field, strings.Join(options, ", "))
}
