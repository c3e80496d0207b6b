// Package output writes calculation outcomes for the command line.
package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/calckit/internal/export"
	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/iwvelando/calckit/pkg/format"
)

// Write renders out to w in the named output format.
func Write(w io.Writer, outputFormat string, out calculator.Outcome, r *format.Renderer) error {
	switch outputFormat {
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, out, r)
	case constants.OutputFormatCSV:
		return CsvFormat(w, out, r)
	case constants.OutputFormatJSON:
		return JSONFormat(w, out, r)
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, out calculator.Outcome, r *format.Renderer) error {
	fmt.Fprintf(w, "--- Results for %s ---\n", out.Calculator)
	if !out.Valid {
		fmt.Fprintf(w, "Validation errors:\n")
		for _, e := range out.Errors {
			fmt.Fprintf(w, "  %s: %s\n", e.Code, e.Message)
		}
		return nil
	}

	fields := r.Fields(out.Result)
	width := 0
	for _, f := range fields {
		if _, ok := f.Value.([]any); !ok && len(f.Name) > width {
			width = len(f.Name)
		}
	}
	var tables []format.Field
	for _, f := range fields {
		switch v := f.Value.(type) {
		case []any:
			tables = append(tables, f)
		case format.Display:
			fmt.Fprintf(w, "%-*s | %s\n", width, f.Name, inline(v))
		default:
			fmt.Fprintf(w, "%-*s | %v\n", width, f.Name, v)
		}
	}

	for _, t := range tables {
		fmt.Fprintf(w, "\n%s:\n", t.Name)
		writeTable(w, t.Value.([]any), columnOrder(out.Result, t.Name))
	}
	return nil
}

func inline(d format.Display) string {
	parts := make([]string, 0, len(d))
	for _, k := range sortedKeys(d) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, d[k]))
	}
	return strings.Join(parts, ", ")
}

// writeTable prints rows of records with aligned columns; other sequences
// are printed one item per line.
func writeTable(w io.Writer, rows []any, order []string) {
	if len(rows) == 0 {
		return
	}
	first, ok := rows[0].(format.Display)
	if !ok {
		for _, row := range rows {
			fmt.Fprintf(w, "  %v\n", row)
		}
		return
	}

	var cols []string
	for _, c := range order {
		if _, ok := first[c]; ok {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		cols = sortedKeys(first)
	}
	cells := make([][]string, len(rows))
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for r, row := range rows {
		d, _ := row.(format.Display)
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			s := cellString(d[c])
			cells[r][i] = s
			if n := len([]rune(s)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(values []string) {
		padded := make([]string, len(values))
		for i, v := range values {
			padded[i] = v + strings.Repeat(" ", widths[i]-len([]rune(v)))
		}
		fmt.Fprintf(w, "%s\n", strings.TrimRight(strings.Join(padded, " | "), " "))
	}
	line(cols)
	seps := make([]string, len(cols))
	for i := range cols {
		seps[i] = strings.Repeat("_", widths[i])
	}
	line(seps)
	for _, c := range cells {
		line(c)
	}
}

func cellString(v any) string {
	if d, ok := v.(format.Display); ok {
		return inline(d)
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// CsvFormat outputs in comma-separated value format. A result with a
// schedule is written as that schedule; otherwise one field per line.
func CsvFormat(w io.Writer, out calculator.Outcome, r *format.Renderer) error {
	if !out.Valid {
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"field", "code", "message"})
		for _, e := range out.Errors {
			_ = cw.Write([]string{e.Field, e.Code, e.Message})
		}
		cw.Flush()
		return cw.Error()
	}

	table, err := export.FromResult(out.Result)
	if err == nil {
		return export.WriteCSV(w, table)
	}
	if !errors.Is(err, export.ErrNoTable) {
		return err
	}

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"field", "value"})
	for _, f := range r.Fields(out.Result) {
		_ = cw.Write([]string{f.Name, cellString(f.Value)})
	}
	cw.Flush()
	return cw.Error()
}

// Rendered is the JSON document written by JSONFormat.
type Rendered struct {
	calculator.Outcome
	Locale  string         `json:"locale"`
	Display format.Display `json:"display,omitempty"`
}

// JSONFormat outputs the raw outcome together with its rendered display
// strings.
func JSONFormat(w io.Writer, out calculator.Outcome, r *format.Renderer) error {
	doc := Rendered{Outcome: out, Locale: r.Locale()}
	if out.Valid {
		doc.Display = r.Render(out.Result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
