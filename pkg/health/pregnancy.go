package health

import (
	"time"

	"github.com/iwvelando/calckit/pkg/datetime"
	"github.com/iwvelando/calckit/pkg/validation"
)

// Pregnancy dating methods.
const (
	MethodLMP        = "lmp"
	MethodConception = "conception"
	MethodIVF        = "ivf"
)

const (
	gestationDays       = 280
	conceptionOffset    = 14
	dueDateSpreadDays   = 7
	maxFutureDays       = 7
	maxPastYears        = 2
	secondTrimesterWeek = 13
	thirdTrimesterWeek  = 27
)

// PregnancyInput dates a pregnancy from the last menstrual period, the
// conception date or the embryo transfer date.
type PregnancyInput struct {
	Method string    `mapstructure:"method" calc:"options=lmp|conception|ivf"`
	Date   time.Time `mapstructure:"date" calc:"required"`
	AsOf   time.Time `mapstructure:"asOf" calc:"timestamp"`
}

// SetReference anchors "today" for gestational age.
func (in *PregnancyInput) SetReference(now time.Time) { in.AsOf = now }

// PregnancyResult is the due date and current gestational age.
type PregnancyResult struct {
	DueDate        time.Time `json:"dueDate" display:"date"`
	EarliestDue    time.Time `json:"earliestDueDate" display:"date"`
	LatestDue      time.Time `json:"latestDueDate" display:"date"`
	ConceptionDate time.Time `json:"conceptionDate" display:"date"`
	CurrentWeek    int       `json:"currentWeek" display:"integer"`
	CurrentDay     int       `json:"currentDay" display:"integer"`
	DaysRemaining  int       `json:"daysRemaining" display:"integer"`
	Trimester      int       `json:"trimester" display:"integer"`
	Stage          string    `json:"stage"`
}

// ValidatePregnancy reports every violated constraint. The date may lie
// at most a week ahead and two years back.
func ValidatePregnancy(in PregnancyInput) validation.Errors {
	var errs validation.Errors
	errs.OneOf("method", in.Method, MethodLMP, MethodConception, MethodIVF)

	today := datetime.Day(in.AsOf)
	date := datetime.Day(in.Date)
	if date.After(datetime.AddDays(today, maxFutureDays)) {
		errs.Add("date", validation.RuleFuture, "date cannot be more than %d days in the future", maxFutureDays)
	} else if date.Before(today.AddDate(-maxPastYears, 0, 0)) {
		errs.Add("date", validation.RuleTooOld, "date cannot be more than %d years in the past", maxPastYears)
	}
	return errs
}

// Trimester returns 1, 2 or 3 for a gestational week.
func Trimester(week int) int {
	switch {
	case week < secondTrimesterWeek:
		return 1
	case week < thirdTrimesterWeek:
		return 2
	}
	return 3
}

// Stage names a gestational week.
func Stage(week int) string {
	switch {
	case week < 4:
		return "veryEarly"
	case week < 8:
		return "early"
	case week < secondTrimesterWeek:
		return "firstTrimester"
	case week < thirdTrimesterWeek:
		return "secondTrimester"
	case week < 37:
		return "thirdTrimester"
	case week < 40:
		return "fullTerm"
	}
	return "overdue"
}

// Pregnancy dates a validated input. Gestational age always counts from
// the last menstrual period, which lies two weeks before conception.
func Pregnancy(in PregnancyInput) PregnancyResult {
	lmp := datetime.Day(in.Date)
	if in.Method != MethodLMP {
		lmp = datetime.AddDays(lmp, -conceptionOffset)
	}
	today := datetime.Day(in.AsOf)
	due := datetime.AddDays(lmp, gestationDays)

	gestational := datetime.DaysBetween(lmp, today)
	if gestational < 0 {
		gestational = 0
	}
	remaining := datetime.DaysBetween(today, due)
	if remaining < 0 {
		remaining = 0
	}

	week := gestational / 7
	return PregnancyResult{
		DueDate:        due,
		EarliestDue:    datetime.AddDays(due, -dueDateSpreadDays),
		LatestDue:      datetime.AddDays(due, dueDateSpreadDays),
		ConceptionDate: datetime.AddDays(lmp, conceptionOffset),
		CurrentWeek:    week,
		CurrentDay:     gestational % 7,
		DaysRemaining:  remaining,
		Trimester:      Trimester(week),
		Stage:          Stage(week),
	}
}
