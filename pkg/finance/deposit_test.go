package finance

import (
	"math"
	"testing"
)

func TestDeposit(t *testing.T) {
	gp := NewGrowthProcessor(nil)

	tests := []struct {
		name          string
		input         DepositInput
		finalAmount   float64
		totalInterest float64
		effectiveRate float64
	}{
		{
			name:          "interest paid out",
			input:         DepositInput{Amount: 100000, TermMonths: 12, InterestRate: 12, Capitalization: CapitalizationNone},
			finalAmount:   112000,
			totalInterest: 12000,
			effectiveRate: 12,
		},
		{
			name:          "monthly capitalization",
			input:         DepositInput{Amount: 100000, TermMonths: 12, InterestRate: 12, Capitalization: CapitalizationMonthly},
			finalAmount:   100000 * math.Pow(1.01, 12),
			totalInterest: 100000*math.Pow(1.01, 12) - 100000,
			effectiveRate: 12.682503,
		},
		{
			name:          "annual capitalization",
			input:         DepositInput{Amount: 100000, TermMonths: 12, InterestRate: 12, Capitalization: CapitalizationAnnually},
			finalAmount:   112000,
			totalInterest: 12000,
			effectiveRate: 12,
		},
		{
			name:          "quarterly capitalization with remainder credited at maturity",
			input:         DepositInput{Amount: 100000, TermMonths: 4, InterestRate: 12, Capitalization: CapitalizationQuarterly},
			finalAmount:   104030,
			totalInterest: 4030,
			effectiveRate: (math.Pow(1.03, 4) - 1) * 100,
		},
		{
			name:          "monthly additions",
			input:         DepositInput{Amount: 1000, TermMonths: 3, InterestRate: 12, Capitalization: CapitalizationNone, MonthlyAddition: 100},
			finalAmount:   1300 + 10 + 11 + 12,
			totalInterest: 33,
			effectiveRate: 12,
		},
		{
			name:          "withdrawals stop at zero",
			input:         DepositInput{Amount: 1000, TermMonths: 2, InterestRate: 12, Capitalization: CapitalizationNone, MonthlyWithdrawal: 5000},
			finalAmount:   10,
			totalInterest: 10,
			effectiveRate: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := gp.Deposit(tt.input)
			if math.Abs(res.FinalAmount-tt.finalAmount) > 1e-6 {
				t.Errorf("FinalAmount = %.6f, expected %.6f", res.FinalAmount, tt.finalAmount)
			}
			if math.Abs(res.TotalInterest-tt.totalInterest) > 1e-6 {
				t.Errorf("TotalInterest = %.6f, expected %.6f", res.TotalInterest, tt.totalInterest)
			}
			if math.Abs(res.EffectiveRate-tt.effectiveRate) > 1e-5 {
				t.Errorf("EffectiveRate = %.6f, expected %.6f", res.EffectiveRate, tt.effectiveRate)
			}
			if len(res.Schedule) != tt.input.TermMonths {
				t.Errorf("schedule has %d rows, expected %d", len(res.Schedule), tt.input.TermMonths)
			}
		})
	}
}

func TestValidateDeposit(t *testing.T) {
	valid := DepositInput{Amount: 1000, TermMonths: 12, InterestRate: 8, Capitalization: CapitalizationMonthly}
	if errs := ValidateDeposit(valid); !errs.Valid() {
		t.Fatalf("ValidateDeposit() = %v, expected no errors", errs.Codes())
	}

	bad := DepositInput{TermMonths: 601, Capitalization: "weekly", MonthlyAddition: -1, MonthlyWithdrawal: -1}
	expected := []string{"amount.positive", "termMonths.range", "interestRate.range", "capitalization.invalid",
		"monthlyAddition.negative", "monthlyWithdrawal.negative"}
	codes := ValidateDeposit(bad).Codes()
	if len(codes) != len(expected) {
		t.Fatalf("ValidateDeposit() = %v, expected %v", codes, expected)
	}
	for i := range codes {
		if codes[i] != expected[i] {
			t.Errorf("ValidateDeposit()[%d] = %s, expected %s", i, codes[i], expected[i])
		}
	}
}
