package timecalc

import (
	"time"

	"github.com/iwvelando/calckit/pkg/validation"
)

// WorldClockInput is an ordered selection of city ids.
type WorldClockInput struct {
	Cities []string  `mapstructure:"cities"`
	AsOf   time.Time `mapstructure:"asOf" calc:"timestamp"`
}

// SetReference sets the instant shown on every clock.
func (in *WorldClockInput) SetReference(now time.Time) { in.AsOf = now }

// CityTime is the local time in one city.
type CityTime struct {
	City      City      `json:"city"`
	LocalTime time.Time `json:"localTime" display:"datetime"`
	UTCOffset string    `json:"utcOffset"`
	DST       bool      `json:"dst"`
	Weekday   string    `json:"weekday"`
}

// WorldClockResult lists the clocks in the requested order.
type WorldClockResult struct {
	Clocks []CityTime `json:"clocks"`
}

// RuleDuplicate is reported when a city is selected more than once.
const RuleDuplicate = "duplicate"

// ValidateWorldClock reports unknown or duplicate city ids.
func ValidateWorldClock(in WorldClockInput) validation.Errors {
	var errs validation.Errors
	if len(in.Cities) == 0 {
		errs.Add("cities", validation.RuleRequired, "select at least one city")
	}
	seen := make(map[string]bool)
	for _, id := range in.Cities {
		if _, ok := LookupCity(id); !ok {
			errs.Add("cities", validation.RuleInvalid, "unknown city %q", id)
		} else if seen[id] {
			errs.Add("cities", RuleDuplicate, "city %q is selected twice", id)
		}
		seen[id] = true
	}
	return errs
}

// WorldClock renders the reference instant in every selected city.
func WorldClock(in WorldClockInput) WorldClockResult {
	var res WorldClockResult
	for _, id := range in.Cities {
		city, _ := LookupCity(id)
		loc, err := city.Location()
		if err != nil {
			loc = time.UTC
		}
		local := in.AsOf.In(loc)
		res.Clocks = append(res.Clocks, CityTime{
			City:      city,
			LocalTime: local,
			UTCOffset: local.Format("-07:00"),
			DST:       local.IsDST(),
			Weekday:   local.Weekday().String(),
		})
	}
	return res
}
