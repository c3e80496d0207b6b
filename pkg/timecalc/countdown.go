package timecalc

import (
	"time"

	"github.com/iwvelando/calckit/pkg/validation"
)

const progressHorizon = 365 * 24 * time.Hour

// CountdownInput is a target instant and the options of its display.
type CountdownInput struct {
	Target    time.Time `mapstructure:"target" calc:"required,timestamp"`
	ShowWeeks bool      `mapstructure:"showWeeks"`
	AsOf      time.Time `mapstructure:"asOf" calc:"timestamp"`
}

// SetReference sets the instant the countdown is measured from.
func (in *CountdownInput) SetReference(now time.Time) { in.AsOf = now }

// CountdownResult is the time left until the target. Once the target has
// passed every component is zero and Finished is set.
type CountdownResult struct {
	Days         int     `json:"days" display:"integer"`
	Hours        int     `json:"hours" display:"integer"`
	Minutes      int     `json:"minutes" display:"integer"`
	Seconds      int     `json:"seconds" display:"integer"`
	TotalSeconds int64   `json:"totalSeconds" display:"integer"`
	Weeks        int     `json:"weeks,omitempty" display:"integer"`
	WeekDays     int     `json:"weekDays,omitempty" display:"integer"`
	Finished     bool    `json:"finished"`
	Progress     float64 `json:"progress" display:"percent"`
}

// ValidateCountdown accepts any target; a target in the past is finished.
func ValidateCountdown(CountdownInput) validation.Errors {
	return nil
}

// Countdown splits the time left until the target into components.
// Progress is the share of a one-year horizon already elapsed.
func Countdown(in CountdownInput) CountdownResult {
	left := in.Target.Sub(in.AsOf)
	if left <= 0 {
		return CountdownResult{Finished: true, Progress: 100}
	}

	total := int64(left / time.Second)
	res := CountdownResult{
		Days:         int(total / 86400),
		Hours:        int(total % 86400 / 3600),
		Minutes:      int(total % 3600 / 60),
		Seconds:      int(total % 60),
		TotalSeconds: total,
	}
	if in.ShowWeeks {
		res.Weeks, res.WeekDays = res.Days/7, res.Days%7
	}
	if left < progressHorizon {
		res.Progress = float64(progressHorizon-left) / float64(progressHorizon) * 100
	}
	return res
}
