package calculator

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/iwvelando/calckit/pkg/datetime"
	"go.uber.org/zap"
)

// Runner evaluates registered calculators with a safety net: a panic or a
// non-finite number in a result is reported as ErrCalculation instead of
// reaching the caller.
type Runner struct {
	registry *Registry
	clock    datetime.Clock
	logger   *zap.Logger
}

// NewRunner builds a Runner. A nil clock reads the wall clock and a nil
// logger discards output.
func NewRunner(logger *zap.Logger, registry *Registry, clock datetime.Clock) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = datetime.SystemClock{}
	}
	return &Runner{registry: registry, clock: clock, logger: logger}
}

// Registry returns the calculators the runner evaluates.
func (r *Runner) Registry() *Registry {
	return r.registry
}

// Now returns the runner's reference instant.
func (r *Runner) Now() time.Time {
	return r.clock.Now()
}

// Run validates in and, when valid, computes the result of calculator id.
// Validation failures are reported in the Outcome, not as an error.
func (r *Runner) Run(id string, in Input) (out Outcome, err error) {
	def, err := r.registry.Lookup(id)
	if err != nil {
		return Outcome{}, err
	}

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("calculation panicked",
				zap.String("op", "calculator.Run"),
				zap.String("calculator", id),
				zap.Any("panic", p),
			)
			out, err = Outcome{Calculator: id}, fmt.Errorf("%w: %s", ErrCalculation, id)
		}
	}()

	out = def.Evaluate(in, r.clock.Now())
	if out.Valid && !finite(reflect.ValueOf(out.Result)) {
		r.logger.Error("calculation produced a non-finite number",
			zap.String("op", "calculator.Run"),
			zap.String("calculator", id),
		)
		return Outcome{Calculator: id}, fmt.Errorf("%w: %s produced a non-finite number", ErrCalculation, id)
	}

	r.logger.Debug("calculation evaluated",
		zap.String("op", "calculator.Run"),
		zap.String("calculator", id),
		zap.Bool("valid", out.Valid),
		zap.Strings("errors", out.Errors.Codes()),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// finite walks v and reports false if any float is NaN or infinite.
func finite(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.Pointer, reflect.Interface:
		return v.IsNil() || finite(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() && !finite(v.Field(i)) {
				return false
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !finite(v.Index(i)) {
				return false
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if !finite(iter.Value()) {
				return false
			}
		}
	}
	return true
}
