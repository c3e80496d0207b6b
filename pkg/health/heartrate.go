package health

import (
	"github.com/iwvelando/calckit/pkg/validation"
)

// Zone names, from lightest to hardest, and the out-of-range markers.
const (
	BelowZones   = "below"
	ZoneResting  = "resting"
	ZoneFatBurn  = "fatBurning"
	ZoneAerobic  = "aerobic"
	ZoneAnaerob  = "anaerobic"
	ZoneMaximum  = "maximum"
	AboveMaximum = "above"
)

var zoneBounds = []struct {
	name     string
	min, max float64
}{
	{ZoneResting, 50, 60},
	{ZoneFatBurn, 60, 70},
	{ZoneAerobic, 70, 80},
	{ZoneAnaerob, 80, 90},
	{ZoneMaximum, 90, 100},
}

// HeartRateInput takes an age and optional resting and current pulse. A
// zero pulse means not given. With a resting pulse zones are computed on
// the heart rate reserve (Karvonen).
type HeartRateInput struct {
	Age       int     `mapstructure:"age" calc:"required,unit=years"`
	RestingHR float64 `mapstructure:"restingHR" calc:"unit=bpm"`
	CurrentHR float64 `mapstructure:"currentHR" calc:"unit=bpm"`
}

// Zone is a training zone in beats per minute.
type Zone struct {
	Name       string  `json:"name"`
	MinPercent float64 `json:"minPercent" display:"percent"`
	MaxPercent float64 `json:"maxPercent" display:"percent"`
	Min        float64 `json:"min" display:"integer"`
	Max        float64 `json:"max" display:"integer"`
}

// HeartRateResult holds the maximum heart rate and training zones.
type HeartRateResult struct {
	MaxHR       float64 `json:"maxHR" display:"integer"`
	Method      string  `json:"method"`
	Zones       []Zone  `json:"zones"`
	CurrentZone string  `json:"currentZone,omitempty"`
}

func ValidateHeartRate(in HeartRateInput) validation.Errors {
	var errs validation.Errors
	errs.Range("age", float64(in.Age), 1, 120)
	if in.RestingHR != 0 {
		errs.Range("restingHR", in.RestingHR, 30, 250)
	}
	if in.CurrentHR != 0 {
		errs.Range("currentHR", in.CurrentHR, 30, 250)
	}
	return errs
}

// HeartRate computes training zones for a validated input.
func HeartRate(in HeartRateInput) HeartRateResult {
	res := HeartRateResult{MaxHR: float64(220 - in.Age), Method: "maximum"}
	base, span := 0.0, res.MaxHR
	if in.RestingHR > 0 && in.RestingHR < res.MaxHR {
		res.Method = "reserve"
		base, span = in.RestingHR, res.MaxHR-in.RestingHR
	}

	for _, z := range zoneBounds {
		res.Zones = append(res.Zones, Zone{
			Name:       z.name,
			MinPercent: z.min,
			MaxPercent: z.max,
			Min:        base + span*z.min/100,
			Max:        base + span*z.max/100,
		})
	}

	if in.CurrentHR > 0 {
		res.CurrentZone = zoneOf((in.CurrentHR - base) / span * 100)
	}
	return res
}

func zoneOf(percent float64) string {
	if percent < zoneBounds[0].min {
		return BelowZones
	}
	for _, z := range zoneBounds {
		if percent <= z.max {
			return z.name
		}
	}
	return AboveMaximum
}
