package timecalc

import (
	"time"

	"github.com/iwvelando/calckit/pkg/datetime"
	"github.com/iwvelando/calckit/pkg/validation"
)

// DaysBetweenInput is a pair of calendar dates.
type DaysBetweenInput struct {
	Start time.Time `mapstructure:"startDate" calc:"required"`
	End   time.Time `mapstructure:"endDate" calc:"required"`
}

// DaysBetweenResult is the distance between two dates.
type DaysBetweenResult struct {
	TotalDays int `json:"totalDays" display:"integer"`
	Weeks     int `json:"weeks" display:"integer"`
	Years     int `json:"years" display:"integer"`
	Months    int `json:"months" display:"integer"`
	Days      int `json:"days" display:"integer"`
}

// RuleBeforeStart is reported when a range ends before it starts.
const RuleBeforeStart = "beforeStart"

// ValidateDaysBetween reports a range that ends before it starts.
func ValidateDaysBetween(in DaysBetweenInput) validation.Errors {
	var errs validation.Errors
	if datetime.Day(in.End).Before(datetime.Day(in.Start)) {
		errs.Add("endDate", RuleBeforeStart, "end date cannot be before start date")
	}
	return errs
}

// DaysBetween measures a validated date range in days, whole weeks and a
// years/months/days breakdown.
func DaysBetween(in DaysBetweenInput) DaysBetweenResult {
	total := datetime.DaysBetween(in.Start, in.End)
	y, m, d := datetime.Breakdown(in.Start, in.End)
	return DaysBetweenResult{TotalDays: total, Weeks: total / 7, Years: y, Months: m, Days: d}
}
