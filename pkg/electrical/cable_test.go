package electrical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCurrent(t *testing.T) {
	assert.InDelta(t, 5000/(220*0.8), LoadCurrent(5, 220, 0.8, false), 1e-9)
	assert.InDelta(t, 15000/(math.Sqrt(3)*380*0.9), LoadCurrent(15, 380, 0.9, true), 1e-9)
}

func TestStandardSection(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
		ok       bool
	}{
		{0.4, 1, true},
		{1, 1, true},
		{1.6, 2.5, true},
		{7.1, 10, true},
		{480, 500, true},
		{620, 620, false},
	}
	for _, tt := range tests {
		got, ok := StandardSection(tt.in)
		assert.Equal(t, tt.expected, got, "StandardSection(%v)", tt.in)
		assert.Equal(t, tt.ok, ok, "StandardSection(%v) ok", tt.in)
	}
}

func TestCableLimitedByCurrentDensity(t *testing.T) {
	res := Cable(CableInput{
		Mode: "power", Power: 5, Voltage: 220, Length: 30, Phase: "single",
		PowerFactor: 0.8, Material: Copper, Temperature: 20, AllowedDropPct: 3,
	})

	current := 5000 / (220 * 0.8)
	assert.InDelta(t, current, res.Current, 1e-9)
	assert.InDelta(t, current/4, res.RecommendedSection, 1e-9)
	assert.Equal(t, 10.0, res.StandardSection)
	assert.False(t, res.Oversize)
	assert.InDelta(t, current/10, res.CurrentDensity, 1e-9)
	assert.InDelta(t, 0.0525, res.Resistance, 1e-12)
	assert.InDelta(t, 2*0.0525*current, res.VoltageDrop, 1e-9)
	assert.InDelta(t, 2*0.0525*current/220*100, res.VoltageDropPercent, 1e-9)
	assert.InDelta(t, 2.67, res.WeightKg, 1e-9)
	assert.InDelta(t, 21.36, res.Cost, 1e-9)
}

func TestCableLimitedByVoltageDrop(t *testing.T) {
	res := Cable(CableInput{
		Mode: "current", Current: 16, Voltage: 220, Length: 100, Phase: "single",
		PowerFactor: 1, Material: Aluminum, Temperature: 45, AllowedDropPct: 2,
	})

	rho := 0.0283 * (1 + 0.004*25)
	byDrop := 2 * rho * 100 * 16 / 4.4
	assert.InDelta(t, byDrop, res.RecommendedSection, 1e-9)
	assert.Equal(t, 25.0, res.StandardSection)
	assert.LessOrEqual(t, res.VoltageDropPercent, 2.0)
}

func TestValidateCable(t *testing.T) {
	valid := CableInput{Mode: "current", Current: 10, Voltage: 230, Length: 5, Phase: "three", PowerFactor: 0.9, Material: Aluminum, Temperature: 30, AllowedDropPct: 5}
	assert.True(t, ValidateCable(valid).Valid())

	bad := CableInput{Mode: "power", Phase: "two", Material: "silver", Temperature: 150}
	assert.Equal(t, []string{
		"power.positive", "voltage.positive", "length.positive", "phaseType.invalid",
		"powerFactor.range", "material.invalid", "temperature.range", "voltageDrop.range",
	}, ValidateCable(bad).Codes())
}
