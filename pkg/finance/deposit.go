package finance

import (
	"fmt"
	"math"

	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/iwvelando/calckit/pkg/mathutil"
	"github.com/iwvelando/calckit/pkg/validation"
	"go.uber.org/zap"
)

// Capitalization schedules. With CapitalizationNone interest is paid out
// and never earns interest itself.
const (
	CapitalizationNone      = "none"
	CapitalizationMonthly   = "monthly"
	CapitalizationQuarterly = "quarterly"
	CapitalizationAnnually  = "annually"
)

var capitalizationMonths = map[string]int{
	CapitalizationNone:      0,
	CapitalizationMonthly:   1,
	CapitalizationQuarterly: 3,
	CapitalizationAnnually:  12,
}

// DepositInput is a bank deposit request.
type DepositInput struct {
	Amount            float64 `mapstructure:"amount" calc:"required,unit=currency"`
	TermMonths        int     `mapstructure:"termMonths" calc:"required,unit=months"`
	InterestRate      float64 `mapstructure:"interestRate" calc:"required,unit=%"`
	Capitalization    string  `mapstructure:"capitalization" calc:"options=none|monthly|quarterly|annually"`
	MonthlyAddition   float64 `mapstructure:"monthlyAddition" calc:"unit=currency"`
	MonthlyWithdrawal float64 `mapstructure:"monthlyWithdrawal" calc:"unit=currency"`
}

// DepositMonth is one month of a deposit schedule.
type DepositMonth struct {
	Month       int     `json:"month" display:"integer"`
	StartAmount float64 `json:"startAmount" display:"currency"`
	Interest    float64 `json:"interestEarned" display:"currency"`
	Capitalized float64 `json:"capitalized" display:"currency"`
	Addition    float64 `json:"addition" display:"currency"`
	Withdrawal  float64 `json:"withdrawal" display:"currency"`
	EndAmount   float64 `json:"endAmount" display:"currency"`
}

// DepositResult is a computed deposit.
type DepositResult struct {
	FinalAmount   float64        `json:"finalAmount" display:"currency"`
	TotalInterest float64        `json:"totalInterest" display:"currency"`
	InterestPaid  float64        `json:"interestPaidOut" display:"currency"`
	EffectiveRate float64        `json:"effectiveRate" display:"percent"`
	Schedule      []DepositMonth `json:"depositSchedule"`
}

// ValidateDeposit reports every violated constraint.
func ValidateDeposit(in DepositInput) validation.Errors {
	var errs validation.Errors
	errs.Positive("amount", in.Amount)
	if in.TermMonths < 1 || in.TermMonths > constants.MaxSavingsTermMonths {
		errs.Add("termMonths", validation.RuleRange, "term must be between 1 and %d months", constants.MaxSavingsTermMonths)
	}
	if !(in.InterestRate > 0 && in.InterestRate <= 100) {
		errs.Add("interestRate", validation.RuleRange, "interest rate must be greater than 0 and at most 100")
	}
	errs.OneOf("capitalization", in.Capitalization,
		CapitalizationNone, CapitalizationMonthly, CapitalizationQuarterly, CapitalizationAnnually)
	errs.NonNegative("monthlyAddition", in.MonthlyAddition)
	errs.NonNegative("monthlyWithdrawal", in.MonthlyWithdrawal)
	return errs
}

// Deposit projects a validated deposit. Interest accrues monthly on the
// balance and is credited to it every capitalization period; any accrued
// remainder is credited when the term ends. Withdrawals never take the
// balance below zero.
func (gp *GrowthProcessor) Deposit(in DepositInput) DepositResult {
	monthlyRate := mathutil.MonthlyRate(in.InterestRate)
	every := capitalizationMonths[in.Capitalization]

	var res DepositResult
	balance, pending := in.Amount, 0.0
	for month := 1; month <= in.TermMonths; month++ {
		row := DepositMonth{Month: month, StartAmount: balance}

		row.Interest = balance * monthlyRate
		res.TotalInterest += row.Interest
		if every == 0 {
			res.InterestPaid += row.Interest
		} else {
			pending += row.Interest
			if month%every == 0 || month == in.TermMonths {
				row.Capitalized = pending
				balance += pending
				pending = 0
			}
		}

		row.Addition = in.MonthlyAddition
		row.Withdrawal = math.Min(in.MonthlyWithdrawal, balance+in.MonthlyAddition)
		balance += row.Addition - row.Withdrawal
		row.EndAmount = balance
		res.Schedule = append(res.Schedule, row)
	}

	res.FinalAmount = balance + res.InterestPaid
	res.EffectiveRate = in.InterestRate
	if every > 0 {
		res.EffectiveRate = mathutil.EffectiveAnnualRate(in.InterestRate, float64(constants.MonthsPerYear/every))
	}

	gp.logger.Debug(fmt.Sprintf("deposit of %.2f over %d months with %s capitalization: %.2f",
		in.Amount, in.TermMonths, in.Capitalization, res.FinalAmount),
		zap.String("op", "finance.Deposit"),
	)
	return res
}
