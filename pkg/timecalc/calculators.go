package timecalc

import (
	"github.com/iwvelando/calckit/pkg/calculator"
)

// Calculator identifiers.
const (
	DaysBetweenID = "days-between"
	CountdownID   = "countdown"
	WorldClockID  = "world-clock"
)

// Calculators returns the time and date calculator definitions.
func Calculators() []calculator.Definition {
	return []calculator.Definition{
		calculator.MustNew(calculator.Spec[DaysBetweenInput, DaysBetweenResult]{
			ID:       DaysBetweenID,
			Category: calculator.CategoryTime,
			Summary:  "Days, weeks, months and years between two dates",
			Validate: ValidateDaysBetween,
			Compute:  DaysBetween,
		}),
		calculator.MustNew(calculator.Spec[CountdownInput, CountdownResult]{
			ID:       CountdownID,
			Category: calculator.CategoryTime,
			Summary:  "Time left until an event",
			Validate: ValidateCountdown,
			Compute:  Countdown,
		}),
		calculator.MustNew(calculator.Spec[WorldClockInput, WorldClockResult]{
			ID:       WorldClockID,
			Category: calculator.CategoryTime,
			Summary:  "Current time in cities around the world",
			Defaults: func() WorldClockInput { return WorldClockInput{Cities: DefaultCityIDs()} },
			Validate: ValidateWorldClock,
			Compute:  WorldClock,
		}),
	}
}
