package mathutil

import (
	"math"
	"testing"
)

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		annual   float64
		expected float64
	}{
		{12, 0.01},
		{6, 0.005},
		{0, 0},
	}
	for _, tt := range tests {
		if got := MonthlyRate(tt.annual); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("MonthlyRate(%v) = %v, expected %v", tt.annual, got, tt.expected)
		}
	}
}

func TestEffectiveAnnualRate(t *testing.T) {
	tests := []struct {
		name     string
		nominal  float64
		periods  float64
		expected float64
	}{
		{"annual compounding is nominal", 10, 1, 10},
		{"monthly", 12, 12, 12.682503013196977},
		{"quarterly", 8, 4, 8.243216},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveAnnualRate(tt.nominal, tt.periods); math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("EffectiveAnnualRate(%v, %v) = %v, expected %v", tt.nominal, tt.periods, got, tt.expected)
			}
		})
	}
}

func TestShare(t *testing.T) {
	if got := Share(25, 200); got != 12.5 {
		t.Errorf("Share(25, 200) = %v, expected 12.5", got)
	}
	if got := Share(5, 0); got != 0 {
		t.Errorf("Share(5, 0) = %v, expected 0", got)
	}
	if got := FromPercent(ToPercent(0.375)); math.Abs(got-0.375) > 1e-12 {
		t.Errorf("FromPercent(ToPercent(0.375)) = %v, expected 0.375", got)
	}
}
