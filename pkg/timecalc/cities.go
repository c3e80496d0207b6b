// Package timecalc provides date and clock calculators: days between two
// dates, countdowns to an event and a world clock.
package timecalc

import (
	"strings"
	"time"
	// Embedded zone database so world clock results do not depend on the host.
	_ "time/tzdata"
)

// City is a world clock location.
type City struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	TimeZone    string `json:"timeZone"`
}

// Location loads the city's time zone.
func (c City) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// Cities is the catalog of world clock locations. The first entries are the
// popular selection used when the user has not chosen any.
var Cities = []City{
	{"moscow", "Moscow", "RU", "Europe/Moscow"},
	{"london", "London", "GB", "Europe/London"},
	{"new-york", "New York", "US", "America/New_York"},
	{"tokyo", "Tokyo", "JP", "Asia/Tokyo"},
	{"sydney", "Sydney", "AU", "Australia/Sydney"},
	{"paris", "Paris", "FR", "Europe/Paris"},
	{"berlin", "Berlin", "DE", "Europe/Berlin"},
	{"beijing", "Beijing", "CN", "Asia/Shanghai"},
	{"dubai", "Dubai", "AE", "Asia/Dubai"},
	{"los-angeles", "Los Angeles", "US", "America/Los_Angeles"},
	{"singapore", "Singapore", "SG", "Asia/Singapore"},
	{"mumbai", "Mumbai", "IN", "Asia/Kolkata"},
	{"rio-de-janeiro", "Rio de Janeiro", "BR", "America/Sao_Paulo"},
	{"cape-town", "Cape Town", "ZA", "Africa/Johannesburg"},
}

const popularCount = 10

// DefaultCityIDs returns the popular selection.
func DefaultCityIDs() []string {
	ids := make([]string, 0, popularCount)
	for _, c := range Cities[:popularCount] {
		ids = append(ids, c.ID)
	}
	return ids
}

// LookupCity finds a city by id.
func LookupCity(id string) (City, bool) {
	for _, c := range Cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// SearchCities returns the cities whose id, name, country code or zone
// contains query, ignoring case.
func SearchCities(query string) []City {
	q := strings.ToLower(strings.TrimSpace(query))
	var found []City
	for _, c := range Cities {
		for _, s := range []string{c.ID, c.Name, c.CountryCode, c.TimeZone} {
			if strings.Contains(strings.ToLower(s), q) {
				found = append(found, c)
				break
			}
		}
	}
	return found
}
