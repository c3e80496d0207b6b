package health

import (
	"time"

	"github.com/iwvelando/calckit/pkg/datetime"
	"github.com/iwvelando/calckit/pkg/validation"
)

// lutealPhaseDays is the time from ovulation to the next period.
const lutealPhaseDays = 14

// OvulationInput describes a menstrual cycle.
type OvulationInput struct {
	LastPeriod   time.Time `mapstructure:"lastPeriodDate" calc:"required"`
	CycleLength  int       `mapstructure:"cycleLength" calc:"unit=days"`
	PeriodLength int       `mapstructure:"periodLength" calc:"unit=days"`
	AsOf         time.Time `mapstructure:"asOf" calc:"timestamp"`
}

// SetReference anchors "today" for the future-date check.
func (in *OvulationInput) SetReference(now time.Time) { in.AsOf = now }

// OvulationResult holds the predicted dates of the cycle.
type OvulationResult struct {
	OvulationDate time.Time `json:"ovulationDate" display:"date"`
	FertileStart  time.Time `json:"fertileStart" display:"date"`
	FertileEnd    time.Time `json:"fertileEnd" display:"date"`
	NextPeriod    time.Time `json:"nextPeriod" display:"date"`
	PeriodEnd     time.Time `json:"periodEnd" display:"date"`
	OvulationDay  int       `json:"ovulationDay" display:"integer"`
	CycleType     string    `json:"cycleType"`
}

// ValidateOvulation reports every violated constraint.
func ValidateOvulation(in OvulationInput) validation.Errors {
	var errs validation.Errors
	if datetime.Day(in.LastPeriod).After(datetime.Day(in.AsOf)) {
		errs.Add("lastPeriodDate", validation.RuleFuture, "last period date cannot be in the future")
	}
	errs.Range("cycleLength", float64(in.CycleLength), 15, 45)
	errs.Range("periodLength", float64(in.PeriodLength), 1, 10)
	return errs
}

// CycleType names a cycle length: short, normal, long or irregular.
func CycleType(cycleLength int) string {
	switch {
	case cycleLength >= 21 && cycleLength <= 24:
		return "short"
	case cycleLength >= 25 && cycleLength <= 30:
		return "normal"
	case cycleLength >= 31 && cycleLength <= 35:
		return "long"
	}
	return "irregular"
}

// Ovulation predicts the cycle following a validated last period. The
// fertile window runs from two days before ovulation to one day after.
func Ovulation(in OvulationInput) OvulationResult {
	start := datetime.Day(in.LastPeriod)
	day := in.CycleLength - lutealPhaseDays
	ovulation := datetime.AddDays(start, day)
	return OvulationResult{
		OvulationDate: ovulation,
		FertileStart:  datetime.AddDays(ovulation, -2),
		FertileEnd:    datetime.AddDays(ovulation, 1),
		NextPeriod:    datetime.AddDays(start, in.CycleLength),
		PeriodEnd:     datetime.AddDays(start, in.PeriodLength-1),
		OvulationDay:  day,
		CycleType:     CycleType(in.CycleLength),
	}
}
