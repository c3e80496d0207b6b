// Package loans provides loan amortization for annuity and differentiated
// repayment plans.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/iwvelando/calckit/pkg/mathutil"
	"github.com/iwvelando/calckit/pkg/validation"
	"go.uber.org/zap"
)

// PaymentType selects how a loan is repaid.
type PaymentType string

const (
	// Annuity loans repay the same amount every month.
	Annuity PaymentType = "annuity"
	// Differentiated loans repay a constant principal share plus interest on
	// the remaining balance, so payments shrink every month.
	Differentiated PaymentType = "differentiated"
)

// Payment holds the values for a given month of the schedule.
type Payment struct {
	Month     int     `json:"month" display:"integer"`
	Payment   float64 `json:"payment" display:"currency"`
	Interest  float64 `json:"interest" display:"currency"`
	Principal float64 `json:"principal" display:"currency"`
	Balance   float64 `json:"balance" display:"currency"`
}

// Input is a loan request. The term is the sum of TermYears and TermMonths.
type Input struct {
	Amount            float64 `mapstructure:"loanAmount" calc:"required,unit=currency"`
	TermYears         int     `mapstructure:"termYears" calc:"unit=years"`
	TermMonths        int     `mapstructure:"termMonths" calc:"unit=months"`
	InterestRate      float64 `mapstructure:"interestRate" calc:"required,unit=%"`
	DownPayment       float64 `mapstructure:"downPayment" calc:"unit=currency"`
	AdditionalPayment float64 `mapstructure:"additionalPayment" calc:"unit=currency"`
	PaymentType       string  `mapstructure:"paymentType" calc:"options=annuity|differentiated"`
}

// TotalMonths returns the loan term in months.
func (in Input) TotalMonths() int {
	return in.TermYears*constants.MonthsPerYear + in.TermMonths
}

// Financed returns the borrowed amount after the down payment.
func (in Input) Financed() float64 {
	return in.Amount - in.DownPayment
}

// Result is a computed loan.
type Result struct {
	// MonthlyPayment is the fixed payment for annuity loans and the first
	// (largest) payment for differentiated loans, additional payment included.
	MonthlyPayment float64   `json:"monthlyPayment" display:"currency"`
	TotalPayments  float64   `json:"totalPayments" display:"currency"`
	TotalInterest  float64   `json:"totalInterest" display:"currency"`
	EffectiveTerm  int       `json:"effectiveTerm" display:"integer"`
	Schedule       []Payment `json:"paymentSchedule"`
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
func CalculateMonthlyPayment(principal, downPayment, annualInterestRate float64, termMonths int) float64 {
	financed := principal - downPayment
	if annualInterestRate == 0 {
		return financed / float64(termMonths)
	}

	r := mathutil.MonthlyRate(annualInterestRate)
	return financed * r / (1 - math.Pow(1+r, -float64(termMonths)))
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * mathutil.MonthlyRate(annualInterestRate)
}

// Validate reports every violated constraint.
func Validate(in Input) validation.Errors {
	var errs validation.Errors
	errs.Positive("loanAmount", in.Amount)

	errs.NonNegative("termYears", float64(in.TermYears))
	errs.NonNegative("termMonths", float64(in.TermMonths))
	months := in.TotalMonths()
	if months < 1 || months > constants.MaxLoanTermMonths {
		errs.Add("term", validation.RuleRange, "loan term must be between 1 and %d months", constants.MaxLoanTermMonths)
	}

	errs.Range("interestRate", in.InterestRate, 0, 100)
	errs.NonNegative("downPayment", in.DownPayment)
	if in.DownPayment > 0 && in.DownPayment >= in.Amount {
		errs.Add("downPayment", RuleExceedsAmount, "down payment must be less than the loan amount")
	}
	errs.NonNegative("additionalPayment", in.AdditionalPayment)
	errs.OneOf("paymentType", in.PaymentType, string(Annuity), string(Differentiated))
	return errs
}

// RuleExceedsAmount is reported when a down payment covers the whole loan.
const RuleExceedsAmount = "exceedsAmount"

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// Calculate amortizes a validated loan.
func (g *AmortizationScheduleGenerator) Calculate(in Input) Result {
	if PaymentType(in.PaymentType) == Differentiated {
		return g.differentiated(in)
	}
	return g.annuity(in)
}

func (g *AmortizationScheduleGenerator) annuity(in Input) Result {
	n := in.TotalMonths()
	installment := CalculateMonthlyPayment(in.Amount, in.DownPayment, in.InterestRate, n) + in.AdditionalPayment

	balance := in.Financed()
	res := Result{MonthlyPayment: installment, Schedule: make([]Payment, 0, n)}
	for month := 1; month <= n && balance > 0; month++ {
		interest := CalculateInterestPayment(balance, in.InterestRate)
		principal := installment - interest
		if month == n || principal >= balance-constants.BalanceEpsilon {
			principal = balance
		}
		balance = g.settle(&res, month, interest, principal, balance)
	}
	return res
}

func (g *AmortizationScheduleGenerator) differentiated(in Input) Result {
	n := in.TotalMonths()
	share := in.Financed() / float64(n)

	balance := in.Financed()
	res := Result{Schedule: make([]Payment, 0, n)}
	for month := 1; month <= n && balance > 0; month++ {
		interest := CalculateInterestPayment(balance, in.InterestRate)
		principal := share + in.AdditionalPayment
		if month == n || principal >= balance-constants.BalanceEpsilon {
			principal = balance
		}
		balance = g.settle(&res, month, interest, principal, balance)
	}
	if len(res.Schedule) > 0 {
		res.MonthlyPayment = res.Schedule[0].Payment
	}
	return res
}

// settle records one month and returns the new balance. The month that
// retires the loan absorbs any residue so the final balance is exactly zero.
func (g *AmortizationScheduleGenerator) settle(res *Result, month int, interest, principal, balance float64) float64 {
	remaining := balance - principal
	if principal == balance {
		remaining = 0
		g.logger.Debug(fmt.Sprintf("month %d: loan retired with final principal %.2f", month, principal),
			zap.String("op", "loans.settle"),
		)
	}

	payment := Payment{
		Month:     month,
		Payment:   principal + interest,
		Interest:  interest,
		Principal: principal,
		Balance:   remaining,
	}
	res.Schedule = append(res.Schedule, payment)
	res.TotalPayments += payment.Payment
	res.TotalInterest += interest
	res.EffectiveTerm = month
	return remaining
}
