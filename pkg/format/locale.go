// Package format renders calculation results for display in one of the
// supported locales. Rendering never changes a result; numbers are rounded
// to their display precision only in the returned strings.
package format

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale describes how one supported language lays out values that the
// CLDR number data does not cover.
type Locale struct {
	Tag language.Tag

	// Currency is the unit of "currency" fields.
	Currency currency.Unit

	// SymbolFirst places the currency symbol before the amount.
	SymbolFirst bool

	// SymbolSpace separates the symbol from the amount.
	SymbolSpace bool

	// PercentSpace separates the number from the percent sign.
	PercentSpace bool

	DateLayout     string
	DateTimeLayout string
}

// DefaultLocale is used for unknown or unsupported locale requests.
const DefaultLocale = "en"

var locales = []Locale{
	{Tag: language.English, Currency: currency.USD, SymbolFirst: true, DateLayout: "01/02/2006", DateTimeLayout: "01/02/2006 3:04 PM"},
	{Tag: language.Russian, Currency: currency.RUB, SymbolSpace: true, PercentSpace: true, DateLayout: "02.01.2006", DateTimeLayout: "02.01.2006 15:04"},
	{Tag: language.German, Currency: currency.EUR, SymbolSpace: true, PercentSpace: true, DateLayout: "02.01.2006", DateTimeLayout: "02.01.2006 15:04"},
	{Tag: language.Spanish, Currency: currency.EUR, SymbolSpace: true, PercentSpace: true, DateLayout: "02/01/2006", DateTimeLayout: "02/01/2006 15:04"},
	{Tag: language.French, Currency: currency.EUR, SymbolSpace: true, PercentSpace: true, DateLayout: "02/01/2006", DateTimeLayout: "02/01/2006 15:04"},
	{Tag: language.Italian, Currency: currency.EUR, SymbolSpace: true, DateLayout: "02/01/2006", DateTimeLayout: "02/01/2006 15:04"},
	{Tag: language.Polish, Currency: currency.MustParseISO("PLN"), SymbolSpace: true, PercentSpace: true, DateLayout: "02.01.2006", DateTimeLayout: "02.01.2006 15:04"},
	{Tag: language.Turkish, Currency: currency.MustParseISO("TRY"), SymbolFirst: true, DateLayout: "02.01.2006", DateTimeLayout: "02.01.2006 15:04"},
	{Tag: language.BrazilianPortuguese, Currency: currency.BRL, SymbolFirst: true, SymbolSpace: true, DateLayout: "02/01/2006", DateTimeLayout: "02/01/2006 15:04"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// Supported lists the supported locales as BCP 47 tags.
func Supported() []string {
	out := make([]string, len(locales))
	for i, l := range locales {
		out[i] = l.Tag.String()
	}
	return out
}

// Match picks the supported locale closest to the BCP 47 tag or
// Accept-Language value s. Anything unrecognised falls back to English.
func Match(s string) Locale {
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return locales[0]
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return locales[0]
	}
	return locales[idx]
}
