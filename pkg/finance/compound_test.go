package finance

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestCompoundMonthlyScenario(t *testing.T) {
	gp := NewGrowthProcessor(zap.NewNop())
	res := gp.Compound(CompoundInput{Principal: 100000, InterestRate: 12, TermYears: 5, Compounding: Monthly})

	if math.Abs(res.FinalAmount-181669.67) > 0.01 {
		t.Errorf("FinalAmount = %.4f, expected 181669.67", res.FinalAmount)
	}
	if math.Abs(res.TotalInterest-81669.67) > 0.01 {
		t.Errorf("TotalInterest = %.4f, expected 81669.67", res.TotalInterest)
	}
	if res.TotalContributions != 100000 {
		t.Errorf("TotalContributions = %.2f, expected 100000", res.TotalContributions)
	}
	if math.Abs(res.EffectiveAnnualRate-12.682503) > 1e-5 {
		t.Errorf("EffectiveAnnualRate = %.6f, expected 12.682503", res.EffectiveAnnualRate)
	}
	if math.Abs(res.SimpleInterest-60000) > 1e-6 {
		t.Errorf("SimpleInterest = %.2f, expected 60000", res.SimpleInterest)
	}
	if math.Abs(res.GrowthMultiplier-1.8166967) > 1e-6 {
		t.Errorf("GrowthMultiplier = %.6f, expected 1.816697", res.GrowthMultiplier)
	}
	if len(res.Schedule) != 5 || res.Schedule[0].Unit != "year" {
		t.Fatalf("expected 5 yearly rows, got %d (%s)", len(res.Schedule), res.Schedule[0].Unit)
	}
	if res.Schedule[4].EndBalance != res.FinalAmount {
		t.Errorf("last row ends at %.2f, expected %.2f", res.Schedule[4].EndBalance, res.FinalAmount)
	}
}

func TestCompoundFrequencies(t *testing.T) {
	gp := NewGrowthProcessor(nil)

	tests := []struct {
		frequency string
		expected  float64
	}{
		{Annually, 110000},
		{SemiAnnually, 100000 * 1.05 * 1.05},
		{Quarterly, 100000 * math.Pow(1.025, 4)},
		{Monthly, 100000 * math.Pow(1+0.1/12, 12)},
		{Weekly, 100000 * math.Pow(1+0.1/52, 52)},
		{Daily, 100000 * math.Pow(1+0.1/365, 365)},
	}

	for _, tt := range tests {
		t.Run(tt.frequency, func(t *testing.T) {
			res := gp.Compound(CompoundInput{Principal: 100000, InterestRate: 10, TermMonths: 12, Compounding: tt.frequency})
			if math.Abs(res.FinalAmount-tt.expected) > 1e-6 {
				t.Errorf("FinalAmount = %.6f, expected %.6f", res.FinalAmount, tt.expected)
			}
			if len(res.Schedule) != 12 || res.Schedule[0].Unit != "month" {
				t.Errorf("expected 12 monthly rows, got %d", len(res.Schedule))
			}
		})
	}
}

func TestCompoundContributions(t *testing.T) {
	gp := NewGrowthProcessor(nil)
	res := gp.Compound(CompoundInput{
		Principal:           1000,
		TermMonths:          24,
		Compounding:         Monthly,
		MonthlyContribution: 100,
		AnnualContribution:  500,
	})

	if math.Abs(res.FinalAmount-4400) > 1e-9 {
		t.Errorf("FinalAmount = %.2f, expected 4400", res.FinalAmount)
	}
	if math.Abs(res.TotalContributions-4400) > 1e-9 {
		t.Errorf("TotalContributions = %.2f, expected 4400", res.TotalContributions)
	}
	if res.TotalInterest != 0 {
		t.Errorf("TotalInterest = %.2f, expected 0", res.TotalInterest)
	}
	if len(res.Schedule) != 2 {
		t.Fatalf("expected 2 yearly rows, got %d", len(res.Schedule))
	}
	if math.Abs(res.Schedule[0].Contribution-1700) > 1e-9 {
		t.Errorf("first year contribution = %.2f, expected 1700", res.Schedule[0].Contribution)
	}
	if res.Schedule[1].StartBalance != res.Schedule[0].EndBalance {
		t.Errorf("rows do not chain: %.2f != %.2f", res.Schedule[1].StartBalance, res.Schedule[0].EndBalance)
	}
}

func TestCompoundPartialFinalYear(t *testing.T) {
	gp := NewGrowthProcessor(nil)
	res := gp.Compound(CompoundInput{Principal: 1000, InterestRate: 5, TermYears: 2, TermMonths: 6, Compounding: Monthly})

	if len(res.Schedule) != 3 {
		t.Fatalf("expected 3 yearly rows, got %d", len(res.Schedule))
	}
	if res.Schedule[2].Period != 3 || res.Schedule[2].EndBalance != res.FinalAmount {
		t.Errorf("partial year row = %+v, expected period 3 ending at %.2f", res.Schedule[2], res.FinalAmount)
	}
}

func TestValidateCompound(t *testing.T) {
	tests := []struct {
		name     string
		input    CompoundInput
		expected []string
	}{
		{"valid", CompoundInput{Principal: 1, InterestRate: 5, TermMonths: 1, Compounding: Daily}, nil},
		{"zero principal", CompoundInput{InterestRate: 5, TermMonths: 1, Compounding: Daily}, []string{"principal.positive"}},
		{"rate too high", CompoundInput{Principal: 1, InterestRate: 120, TermMonths: 1, Compounding: Daily}, []string{"interestRate.range"}},
		{"no term", CompoundInput{Principal: 1, InterestRate: 5, Compounding: Daily}, []string{"term.range"}},
		{"negative years", CompoundInput{Principal: 1, InterestRate: 5, TermYears: -1, TermMonths: 24, Compounding: Daily}, []string{"termYears.negative"}},
		{"negative months", CompoundInput{Principal: 1, InterestRate: 5, TermYears: 1, TermMonths: -6, Compounding: Daily}, []string{"termMonths.negative"}},
		{"term too long", CompoundInput{Principal: 1, InterestRate: 5, TermYears: 51, Compounding: Daily}, []string{"term.range"}},
		{"unknown frequency", CompoundInput{Principal: 1, InterestRate: 5, TermMonths: 1, Compounding: "hourly"}, []string{"compoundingFrequency.invalid"}},
		{"negative contributions", CompoundInput{Principal: 1, InterestRate: 5, TermMonths: 1, Compounding: Daily, MonthlyContribution: -1, AnnualContribution: -1},
			[]string{"monthlyContribution.negative", "annualContribution.negative"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := ValidateCompound(tt.input).Codes()
			if len(codes) != len(tt.expected) {
				t.Fatalf("ValidateCompound() = %v, expected %v", codes, tt.expected)
			}
			for i := range codes {
				if codes[i] != tt.expected[i] {
					t.Errorf("ValidateCompound()[%d] = %s, expected %s", i, codes[i], tt.expected[i])
				}
			}
		})
	}
}
