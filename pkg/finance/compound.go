// Package finance provides savings growth calculators: compound interest
// with regular contributions and bank deposits with periodic capitalization.
package finance

import (
	"fmt"
	"math"

	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/iwvelando/calckit/pkg/mathutil"
	"github.com/iwvelando/calckit/pkg/validation"
	"go.uber.org/zap"
)

// Compounding frequencies.
const (
	Daily        = "daily"
	Weekly       = "weekly"
	Monthly      = "monthly"
	Quarterly    = "quarterly"
	SemiAnnually = "semi-annually"
	Annually     = "annually"
)

var periodsPerYear = map[string]float64{
	Daily:        365,
	Weekly:       52,
	Monthly:      12,
	Quarterly:    4,
	SemiAnnually: 2,
	Annually:     1,
}

// yearlyScheduleThreshold is the term from which schedules are summarized by year.
const yearlyScheduleThreshold = 24

// CompoundInput is a compound interest request.
type CompoundInput struct {
	Principal           float64 `mapstructure:"principal" calc:"required,unit=currency"`
	InterestRate        float64 `mapstructure:"interestRate" calc:"required,unit=%"`
	TermYears           int     `mapstructure:"termYears" calc:"unit=years"`
	TermMonths          int     `mapstructure:"termMonths" calc:"unit=months"`
	Compounding         string  `mapstructure:"compoundingFrequency" calc:"options=daily|weekly|monthly|quarterly|semi-annually|annually"`
	MonthlyContribution float64 `mapstructure:"monthlyContribution" calc:"unit=currency"`
	AnnualContribution  float64 `mapstructure:"annualContribution" calc:"unit=currency"`
}

// TotalMonths returns the investment term in months.
func (in CompoundInput) TotalMonths() int {
	return in.TermYears*constants.MonthsPerYear + in.TermMonths
}

// GrowthPeriod is one row of a growth schedule: a month, or a year for long terms.
type GrowthPeriod struct {
	Period       int     `json:"period" display:"integer"`
	Unit         string  `json:"unit"`
	StartBalance float64 `json:"startBalance" display:"currency"`
	Contribution float64 `json:"contribution" display:"currency"`
	Interest     float64 `json:"interestEarned" display:"currency"`
	EndBalance   float64 `json:"endBalance" display:"currency"`
}

// CompoundResult is a computed compound interest projection.
type CompoundResult struct {
	FinalAmount         float64        `json:"finalAmount" display:"currency"`
	TotalContributions  float64        `json:"totalContributions" display:"currency"`
	TotalInterest       float64        `json:"totalInterest" display:"currency"`
	EffectiveAnnualRate float64        `json:"effectiveAnnualRate" display:"percent"`
	SimpleInterest      float64        `json:"simpleInterest" display:"currency"`
	GrowthMultiplier    float64        `json:"growthMultiplier" display:"number"`
	Schedule            []GrowthPeriod `json:"schedule"`
}

// ValidateCompound reports every violated constraint.
func ValidateCompound(in CompoundInput) validation.Errors {
	var errs validation.Errors
	errs.Positive("principal", in.Principal)
	errs.Range("interestRate", in.InterestRate, 0, 100)

	errs.NonNegative("termYears", float64(in.TermYears))
	errs.NonNegative("termMonths", float64(in.TermMonths))
	months := in.TotalMonths()
	if months < 1 || months > constants.MaxSavingsTermMonths {
		errs.Add("term", validation.RuleRange, "term must be between 1 and %d months", constants.MaxSavingsTermMonths)
	}
	if _, ok := periodsPerYear[in.Compounding]; !ok {
		errs.Add("compoundingFrequency", validation.RuleInvalid, "unknown compounding frequency %q", in.Compounding)
	}
	errs.NonNegative("monthlyContribution", in.MonthlyContribution)
	errs.NonNegative("annualContribution", in.AnnualContribution)
	return errs
}

// GrowthProcessor projects savings growth month by month.
type GrowthProcessor struct {
	logger *zap.Logger
}

// NewGrowthProcessor creates a processor for savings calculations.
func NewGrowthProcessor(logger *zap.Logger) *GrowthProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GrowthProcessor{logger: logger}
}

// Compound projects a validated compound interest request. Monthly
// contributions are credited before the month's interest; annual
// contributions at the end of every twelfth month.
func (gp *GrowthProcessor) Compound(in CompoundInput) CompoundResult {
	months := in.TotalMonths()
	periods := periodsPerYear[in.Compounding]
	rate := mathutil.FromPercent(in.InterestRate)
	// Growth over one month when compounding periods/12 times per month.
	monthFactor := math.Pow(1+rate/periods, periods/constants.MonthsPerYear)

	res := CompoundResult{TotalContributions: in.Principal}
	balance := in.Principal

	yearly := months >= yearlyScheduleThreshold
	var row GrowthPeriod
	for month := 1; month <= months; month++ {
		if !yearly || (month-1)%constants.MonthsPerYear == 0 {
			row = GrowthPeriod{StartBalance: balance}
			if yearly {
				row.Period, row.Unit = (month-1)/constants.MonthsPerYear+1, "year"
			} else {
				row.Period, row.Unit = month, "month"
			}
		}

		contribution := in.MonthlyContribution
		balance += in.MonthlyContribution

		interest := balance * (monthFactor - 1)
		balance += interest

		if month%constants.MonthsPerYear == 0 {
			contribution += in.AnnualContribution
			balance += in.AnnualContribution
		}

		row.Contribution += contribution
		row.Interest += interest
		res.TotalContributions += contribution
		res.TotalInterest += interest

		if !yearly || month%constants.MonthsPerYear == 0 || month == months {
			row.EndBalance = balance
			res.Schedule = append(res.Schedule, row)
		}
	}

	years := float64(months) / constants.MonthsPerYear
	res.FinalAmount = balance
	res.EffectiveAnnualRate = mathutil.EffectiveAnnualRate(in.InterestRate, periods)
	res.SimpleInterest = in.Principal*rate*years + in.MonthlyContribution*float64(months)*rate*years/2
	res.GrowthMultiplier = balance / in.Principal

	gp.logger.Debug(fmt.Sprintf("compound interest over %d months at %.4f%% %s: %.2f",
		months, in.InterestRate, in.Compounding, balance),
		zap.String("op", "finance.Compound"),
	)
	return res
}
