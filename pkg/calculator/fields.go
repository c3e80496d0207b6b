package calculator

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Kind is the scalar type of an input field.
type Kind string

const (
	KindNumber    Kind = "number"
	KindInteger   Kind = "integer"
	KindString    Kind = "string"
	KindEnum      Kind = "enum"
	KindBool      Kind = "bool"
	KindDate      Kind = "date"
	KindList      Kind = "list"
	KindTimestamp Kind = "timestamp"
)

// Field describes one input field of a calculator.
type Field struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Unit     string   `json:"unit,omitempty"`

	index []int
}

var timeType = reflect.TypeOf(time.Time{})

// fieldsOf derives the field list of an input record from its struct tags.
// Embedded structs tagged `mapstructure:",squash"` contribute their fields
// in place.
//
//	Amount float64 `mapstructure:"amount" calc:"required,unit=RUB"`
//	Type   string  `mapstructure:"paymentType" calc:"options=annuity|differentiated"`
//	AsOf   time.Time `mapstructure:"asOf" calc:"timestamp"`
func fieldsOf(t reflect.Type) ([]Field, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input record must be a struct, got %s", t.Kind())
	}
	return appendFields(nil, t, nil)
}

func appendFields(fields []Field, t reflect.Type, parent []int) ([]Field, error) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), parent...), i)
		name, opts, _ := strings.Cut(sf.Tag.Get("mapstructure"), ",")

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && strings.Contains(opts, "squash") {
			var err error
			if fields, err = appendFields(fields, sf.Type, index); err != nil {
				return nil, err
			}
			continue
		}
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}

		f := Field{Name: name, index: index}
		for _, opt := range strings.Split(sf.Tag.Get("calc"), ",") {
			key, value, _ := strings.Cut(strings.TrimSpace(opt), "=")
			switch key {
			case "":
			case "required":
				f.Required = true
			case "timestamp":
				f.Kind = KindTimestamp
			case "unit":
				f.Unit = value
			case "options":
				f.Options = strings.Split(value, "|")
			default:
				return nil, fmt.Errorf("field %s: unknown calc tag option %q", name, key)
			}
		}

		if f.Kind == "" {
			f.Kind = kindOf(sf.Type, len(f.Options) > 0)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func kindOf(t reflect.Type, hasOptions bool) Kind {
	if t == timeType {
		return KindDate
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Bool:
		return KindBool
	case reflect.Slice:
		return KindList
	}
	if hasOptions {
		return KindEnum
	}
	return KindString
}
