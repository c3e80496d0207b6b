// Package export writes the tabular part of a calculation result, such as
// a loan payment schedule, as CSV or as an XLSX workbook.
package export

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoTable is returned for a result that has no tabular field.
var ErrNoTable = errors.New("result has no table to export")

// Table is a header row followed by data rows. Cells hold float64, int64,
// string or bool values.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// FromResult extracts the first exported slice-of-records field of result,
// for instance a payment schedule. Columns follow the record's JSON names
// and floats are rounded to cents.
func FromResult(result any) (Table, error) {
	v := reflect.Indirect(reflect.ValueOf(result))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return Table{}, ErrNoTable
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type.Kind() != reflect.Slice {
			continue
		}
		elem := sf.Type.Elem()
		if elem.Kind() != reflect.Struct || elem == reflect.TypeOf(time.Time{}) {
			continue
		}
		return tableOf(jsonName(sf), v.Field(i)), nil
	}
	return Table{}, ErrNoTable
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}

func tableOf(name string, rows reflect.Value) Table {
	elem := rows.Type().Elem()
	var cols []int
	table := Table{Name: name}
	for i := 0; i < elem.NumField(); i++ {
		sf := elem.Field(i)
		if !sf.IsExported() || sf.Tag.Get("json") == "-" {
			continue
		}
		if sf.Type.Kind() == reflect.Struct && sf.Type != reflect.TypeOf(time.Time{}) {
			continue
		}
		cols = append(cols, i)
		table.Headers = append(table.Headers, jsonName(sf))
	}

	for r := 0; r < rows.Len(); r++ {
		row := make([]any, 0, len(cols))
		for _, c := range cols {
			row = append(row, cell(rows.Index(r).Field(c)))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func cell(v reflect.Value) any {
	if t, ok := v.Interface().(time.Time); ok {
		if t.Equal(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())) {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(v.Float()).Round(2).InexactFloat64()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.String()
	}
	return nil
}
