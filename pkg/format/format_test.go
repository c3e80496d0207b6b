package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in       string
		expected language.Tag
	}{
		{"en", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"de-AT", language.German},
		{"pt-BR", language.BrazilianPortuguese},
		{"fr-CA,fr;q=0.9,en;q=0.5", language.French},
		{"xx", language.English},
		{"", language.English},
		{"not a tag!!", language.English},
	}
	for _, tt := range tests {
		if got := Match(tt.in).Tag; got != tt.expected {
			t.Errorf("Match(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
	assert.Len(t, Supported(), 9)
}

func TestRoundingIsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.68, round(2.675, 2))
	assert.Equal(t, -2.68, round(-2.675, 2))
	assert.Equal(t, 3.0, round(2.5, 0))
}

func TestEnglish(t *testing.T) {
	r := NewRenderer("en-US")
	assert.Equal(t, "en", r.Locale())

	money := r.Money(1234.565)
	assert.Contains(t, money, "1,234.57")
	assert.Contains(t, money, "$")
	assert.True(t, strings.HasPrefix(r.Money(-5), "-"))

	assert.Equal(t, "1,516", r.Integer(1516))
	assert.Equal(t, "12.68%", r.Percent(12.6825))
	assert.Equal(t, "1,234.5", r.Number(1234.5))
	assert.Equal(t, "01/15/2024", r.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "06/15/2024 1:30 PM", r.DateTime(time.Date(2024, 6, 15, 13, 30, 0, 0, time.UTC)))
}

func TestGerman(t *testing.T) {
	r := NewRenderer("de")
	money := r.Money(1234.5)
	assert.Contains(t, money, "1.234,50")
	assert.Contains(t, money, "€")
	assert.True(t, strings.HasPrefix(money, "1.234,50"))
	assert.Equal(t, "12,5\u00a0%", r.Percent(12.5))
	assert.Equal(t, "15.01.2024", r.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestRussianUsesCommaDecimals(t *testing.T) {
	r := NewRenderer("ru")
	assert.Contains(t, r.Money(8884.88), "884,88")
	assert.Contains(t, r.Number(0.5), "0,5")
}

func TestPercentSpaceIsNonBreaking(t *testing.T) {
	for _, tag := range []string{"ru", "de", "fr", "pl"} {
		assert.Equal(t, "12,5\u00a0%", NewRenderer(tag).Percent(12.5), tag)
	}
	assert.Equal(t, "12.5%", NewRenderer("en").Percent(12.5))
	assert.True(t, strings.HasSuffix(NewRenderer("de").Money(1), "\u00a0€"))
}

func TestPreciseKeepsSixDecimals(t *testing.T) {
	assert.Equal(t, "0.000001", NewRenderer("en").Precise(0.000001))
	assert.Equal(t, "1,609.344", NewRenderer("en").Precise(1609.344))
	assert.Equal(t, "0,453592", NewRenderer("ru").Precise(0.45359237))
	assert.Equal(t, "0.33", NewRenderer("en").Number(1.0/3))

	d := Render(struct {
		Factor float64 `json:"factor" display:"precise"`
	}{Factor: 1.0 / 3}, "en")
	assert.Equal(t, "0.333333", d["factor"])
}

type row struct {
	Month   int     `json:"month" display:"integer"`
	Payment float64 `json:"payment" display:"currency"`
}

type sample struct {
	Amount   float64   `json:"amount" display:"currency"`
	Cost     float64   `json:"cost" display:"currency,USD"`
	Rate     float64   `json:"rate" display:"percent"`
	Ratio    float64   `json:"ratio" display:"number"`
	Due      time.Time `json:"due" display:"date"`
	Category string    `json:"category"`
	Finished bool      `json:"finished"`
	Weeks    int       `json:"weeks,omitempty" display:"integer"`
	Hidden   string    `json:"-"`
	Rows     []row     `json:"rows"`
	internal float64
}

func TestRender(t *testing.T) {
	res := sample{
		Amount:   1500.125,
		Cost:     99.5,
		Rate:     7.25,
		Ratio:    1.23456,
		Due:      time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC),
		Category: "elevated",
		Hidden:   "x",
		Rows:     []row{{1, 100}, {2, 99.999}},
		internal: 1,
	}
	d := Render(&res, "en")

	assert.NotContains(t, d, "Hidden")
	assert.NotContains(t, d, "weeks")
	assert.NotContains(t, d, "internal")
	assert.Contains(t, d["amount"], "1,500.13")
	assert.Contains(t, d["cost"], "99.50")
	assert.Equal(t, "7.25%", d["rate"])
	assert.Equal(t, "1.23", d["ratio"])
	assert.Equal(t, "10/07/2024", d["due"])
	assert.Equal(t, "elevated", d["category"])
	assert.Equal(t, "false", d["finished"])

	rows, ok := d["rows"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 2)
	second := rows[1].(Display)
	assert.Equal(t, "2", second["month"])
	assert.Contains(t, second["payment"], "100.00")

	// The result itself is untouched.
	assert.Equal(t, 1500.125, res.Amount)
	assert.Equal(t, 99.999, res.Rows[1].Payment)

	assert.Equal(t, Display{}, Render((*sample)(nil), "en"))
	assert.Equal(t, Display{"value": "3.5"}, Render(3.5, "en"))
}

func TestRenderCurrencyOverrideKeepsLocaleSeparators(t *testing.T) {
	d := Render(sample{Cost: 1234.5}, "de")
	cost := d["cost"].(string)
	assert.Contains(t, cost, "1.234,50")
	assert.NotContains(t, cost, "€")
}

func TestFieldsKeepDeclarationOrder(t *testing.T) {
	fields := NewRenderer("en").Fields(sample{Rate: 5, Rows: []row{{1, 2}}})
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"amount", "cost", "rate", "ratio", "due", "category", "finished", "rows"}, names)
	assert.Equal(t, "5%", fields[2].Value)

	assert.Equal(t, []Field{{Name: "value", Value: "7"}}, NewRenderer("en").Fields(7))
}
