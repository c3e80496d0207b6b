package calculator

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/iwvelando/calckit/pkg/datetime"
	"github.com/iwvelando/calckit/pkg/validation"
	"github.com/mitchellh/mapstructure"
)

// decodeInto copies every declared field present in in onto out, a pointer
// to the input record. Required fields that are absent or blank produce a
// "<field>.required" error; values that cannot be converted to the field's
// type, or that decode to NaN or an infinity, produce "<field>.invalid". Optional fields that are absent keep
// their zero (or defaulted) value.
func decodeInto(in Input, out any, fields []Field) (validation.Errors, map[string]bool) {
	var errs validation.Errors
	reported := make(map[string]bool)
	rv := reflect.ValueOf(out).Elem()

	for _, f := range fields {
		raw, present := in[f.Name]
		if !present || blank(raw) {
			if f.Required {
				errs.Add(f.Name, validation.RuleRequired, "%s is required", f.Name)
				reported[f.Name] = true
			}
			continue
		}

		target := rv.FieldByIndex(f.index).Addr().Interface()
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			ZeroFields:       true,
			Result:           target,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToTimeHook,
				mapstructure.StringToSliceHookFunc(","),
			),
		})
		if err == nil {
			err = decoder.Decode(raw)
		}
		if err != nil || !finiteScalar(reflect.ValueOf(target).Elem()) {
			errs.Add(f.Name, validation.RuleInvalid, "%s has an invalid value", f.Name)
			reported[f.Name] = true
		}
	}
	return errs, reported
}

func finiteScalar(v reflect.Value) bool {
	if v.Kind() != reflect.Float32 && v.Kind() != reflect.Float64 {
		return true
	}
	f := v.Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func stringToTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}
	return datetime.ParseTimestamp(reflect.ValueOf(data).String())
}

func blank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case time.Time:
		return val.IsZero()
	}
	return false
}
