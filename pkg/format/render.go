package format

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	moneyPlaces   = 2
	numberPlaces  = 2
	percentPlaces = 2
	precisePlaces = 6
)

// Display holds the rendered fields of a result keyed by their JSON names.
// Nested records become Display values and sequences become []any.
type Display map[string]any

// Renderer formats values for one locale.
type Renderer struct {
	locale  Locale
	printer *message.Printer
}

// NewRenderer returns a Renderer for the supported locale closest to
// locale.
func NewRenderer(locale string) *Renderer {
	l := Match(locale)
	return &Renderer{locale: l, printer: message.NewPrinter(l.Tag)}
}

// Locale returns the BCP 47 tag the renderer formats for.
func (r *Renderer) Locale() string {
	return r.locale.Tag.String()
}

// Render formats result for locale.
func Render(result any, locale string) Display {
	return NewRenderer(locale).Render(result)
}

// round rounds half away from zero at places decimals.
func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func (r *Renderer) decimal(v float64, places int) string {
	return r.printer.Sprint(number.Decimal(v, number.Scale(places)))
}

// Number formats v with locale grouping and at most two decimals.
func (r *Renderer) Number(v float64) string {
	return r.printer.Sprint(number.Decimal(round(v, numberPlaces), number.MaxFractionDigits(numberPlaces)))
}

// Precise formats v like Number but keeps up to six decimals.
func (r *Renderer) Precise(v float64) string {
	return r.printer.Sprint(number.Decimal(round(v, precisePlaces), number.MaxFractionDigits(precisePlaces)))
}

// Integer formats n with locale grouping.
func (r *Renderer) Integer(n int64) string {
	return r.printer.Sprint(number.Decimal(n))
}

// Percent formats a value already expressed in percent, e.g. 12.5 → "12.5%".
func (r *Renderer) Percent(v float64) string {
	s := r.printer.Sprint(number.Decimal(round(v, percentPlaces), number.MaxFractionDigits(percentPlaces)))
	if r.locale.PercentSpace {
		return s + "\u00a0%"
	}
	return s + "%"
}

// Money formats an amount in the locale's currency.
func (r *Renderer) Money(v float64) string {
	return r.MoneyIn(v, r.locale.Currency)
}

// MoneyIn formats an amount in cur with the locale's separators and
// symbol placement.
func (r *Renderer) MoneyIn(v float64, cur currency.Unit) string {
	v = round(v, moneyPlaces)
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	amount := r.decimal(v, moneyPlaces)
	sym := r.printer.Sprint(currency.Symbol(cur))
	if sym == "" {
		sym = cur.String()
	}

	sep := ""
	if r.locale.SymbolSpace {
		sep = "\u00a0"
	}
	if r.locale.SymbolFirst {
		return sign + sym + sep + amount
	}
	return sign + amount + sep + sym
}

// Date formats the calendar date of t.
func (r *Renderer) Date(t time.Time) string {
	return t.Format(r.locale.DateLayout)
}

// DateTime formats t in its own location.
func (r *Renderer) DateTime(t time.Time) string {
	return t.Format(r.locale.DateTimeLayout)
}

// Render walks the exported fields of result, a struct or pointer to one,
// and formats each according to its `display` tag: currency[,ISO],
// percent, number, precise, integer, date or datetime. Untagged scalars are
// rendered with fmt; fields tagged `json:"-"` and empty omitempty fields
// are skipped.
func (r *Renderer) Render(result any) Display {
	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Display{}
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return Display{}
	}
	if v.Kind() != reflect.Struct {
		return Display{"value": r.value(v, "")}
	}
	return r.record(v)
}

func (r *Renderer) record(v reflect.Value) Display {
	out := make(Display)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fv := v.Field(i)
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}
		out[name] = r.value(fv, sf.Tag.Get("display"))
	}
	return out
}

func (r *Renderer) value(v reflect.Value, display string) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}

	if t, ok := v.Interface().(time.Time); ok {
		if display == "datetime" {
			return r.DateTime(t)
		}
		return r.Date(t)
	}

	switch v.Kind() {
	case reflect.Struct:
		return r.record(v)
	case reflect.Slice, reflect.Array:
		items := make([]any, v.Len())
		for i := range items {
			items[i] = r.value(v.Index(i), display)
		}
		return items
	case reflect.Float32, reflect.Float64:
		return r.scalar(v.Float(), display)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.scalar(float64(v.Int()), display)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return r.scalar(float64(v.Uint()), display)
	}
	return fmt.Sprint(v.Interface())
}

func (r *Renderer) scalar(f float64, display string) string {
	kind, code, _ := strings.Cut(display, ",")
	switch kind {
	case "currency":
		if cur, err := currency.ParseISO(code); err == nil {
			return r.MoneyIn(f, cur)
		}
		return r.Money(f)
	case "percent":
		return r.Percent(f)
	case "precise":
		return r.Precise(f)
	case "integer":
		return r.Integer(int64(round(f, 0)))
	default:
		return r.Number(f)
	}
}

// Field is one rendered top-level field of a result.
type Field struct {
	Name  string
	Value any
}

// Fields renders result like Render but keeps the declaration order of
// its fields.
func (r *Renderer) Fields(result any) []Field {
	d := r.Render(result)
	v := reflect.Indirect(reflect.ValueOf(result))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		if val, ok := d["value"]; ok {
			return []Field{{Name: "value", Value: val}}
		}
		return nil
	}

	fields := make([]Field, 0, len(d))
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" {
			name = t.Field(i).Name
		}
		if val, ok := d[name]; ok {
			fields = append(fields, Field{Name: name, Value: val})
		}
	}
	return fields
}
