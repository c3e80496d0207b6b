package calculator

import (
	"fmt"
	"reflect"
	"time"

	"github.com/iwvelando/calckit/pkg/validation"
)

// Spec describes a calculator over a typed input record I and result R.
type Spec[I any, R any] struct {
	ID       string
	Category Category
	Summary  string

	// Defaults returns the record optional fields start from. Nil means
	// the zero value.
	Defaults func() I

	// Validate must be pure and idempotent.
	Validate func(I) validation.Errors

	// Compute is only called with records that passed Validate.
	Compute func(I) R
}

type typedDefinition[I any, R any] struct {
	spec   Spec[I, R]
	fields []Field
}

// New builds a Definition from spec. It fails when the input record's
// struct tags are malformed.
func New[I any, R any](spec Spec[I, R]) (Definition, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("calculator spec has no ID")
	}
	if spec.Validate == nil || spec.Compute == nil {
		return nil, fmt.Errorf("calculator %s: Validate and Compute are required", spec.ID)
	}

	var zero I
	fields, err := fieldsOf(reflect.TypeOf(zero))
	if err != nil {
		return nil, fmt.Errorf("calculator %s: %w", spec.ID, err)
	}
	return &typedDefinition[I, R]{spec: spec, fields: fields}, nil
}

// MustNew is New for package-level registration; it panics on a malformed spec.
func MustNew[I any, R any](spec Spec[I, R]) Definition {
	def, err := New(spec)
	if err != nil {
		panic(err)
	}
	return def
}

func (d *typedDefinition[I, R]) ID() string         { return d.spec.ID }
func (d *typedDefinition[I, R]) Category() Category { return d.spec.Category }
func (d *typedDefinition[I, R]) Summary() string    { return d.spec.Summary }

func (d *typedDefinition[I, R]) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Decode converts in into the typed record and runs validation. Errors for
// fields that were missing or undecodable are not repeated by the typed
// validator.
func (d *typedDefinition[I, R]) Decode(in Input, now time.Time) (I, validation.Errors) {
	var rec I
	if d.spec.Defaults != nil {
		rec = d.spec.Defaults()
	}
	if setter, ok := any(&rec).(ReferenceSetter); ok {
		setter.SetReference(now)
	}

	errs, reported := decodeInto(in, &rec, d.fields)
	for _, e := range d.spec.Validate(rec) {
		if !reported[e.Field] {
			errs = append(errs, e)
		}
	}
	return rec, errs
}

func (d *typedDefinition[I, R]) Validate(in Input, now time.Time) validation.Errors {
	_, errs := d.Decode(in, now)
	return errs
}

func (d *typedDefinition[I, R]) Evaluate(in Input, now time.Time) Outcome {
	rec, errs := d.Decode(in, now)
	if !errs.Valid() {
		return Outcome{Calculator: d.spec.ID, Errors: errs}
	}
	return Outcome{Calculator: d.spec.ID, Valid: true, Result: d.spec.Compute(rec)}
}
