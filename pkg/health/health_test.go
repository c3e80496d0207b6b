package health

import (
	"testing"
	"time"

	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestClassifyBloodPressure(t *testing.T) {
	tests := []struct {
		systolic, diastolic float64
		expected            string
	}{
		{125, 78, Elevated},
		{115, 75, Normal},
		{119, 79, Normal},
		{120, 79, Elevated},
		{129, 80, Stage1},
		{135, 70, Stage1},
		{140, 85, Stage2},
		{118, 92, Stage2},
		{185, 100, CrisisCategory},
		{150, 121, CrisisCategory},
		{85, 55, Hypotension},
		{100, 55, Hypotension},
	}

	for _, tt := range tests {
		if got := ClassifyBloodPressure(tt.systolic, tt.diastolic); got != tt.expected {
			t.Errorf("ClassifyBloodPressure(%v, %v) = %s, expected %s", tt.systolic, tt.diastolic, got, tt.expected)
		}
	}
}

func TestBloodPressure(t *testing.T) {
	res := BloodPressure(BloodPressureInput{Age: 35, Systolic: 125, Diastolic: 78})
	assert.Equal(t, Elevated, res.Category)
	assert.Equal(t, "moderate", res.RiskLevel)
	assert.Equal(t, Range{120, 130}, res.NormalSystolic)
	assert.Equal(t, "normal", res.AgeComment)

	child := BloodPressure(BloodPressureInput{Age: 12, Systolic: 110, Diastolic: 70})
	assert.Equal(t, Range{120, 140}, child.NormalSystolic)
}

func TestValidateBloodPressure(t *testing.T) {
	assert.True(t, ValidateBloodPressure(BloodPressureInput{Age: 40, Systolic: 120, Diastolic: 80}).Valid())
	assert.Equal(t, []string{"systolic.notAboveDiastolic"},
		ValidateBloodPressure(BloodPressureInput{Age: 40, Systolic: 80, Diastolic: 80}).Codes())
	assert.Equal(t, []string{"age.range", "systolic.range", "diastolic.range"},
		ValidateBloodPressure(BloodPressureInput{Age: 0, Systolic: 301, Diastolic: 20}).Codes())
}

func TestBMI(t *testing.T) {
	res := BMI(BMIInput{Weight: 70, Height: 175})
	assert.InDelta(t, 22.857, res.BMI, 0.001)
	assert.Equal(t, NormalBMI, res.Category)
	assert.InDelta(t, 56.656, res.HealthyWeightMin, 0.001)
	assert.InDelta(t, 76.256, res.HealthyWeightMax, 0.001)

	categories := map[float64]string{17: Underweight, 18.5: NormalBMI, 25: Overweight, 32: Obese1, 37: Obese2, 45: Obese3}
	for bmi, expected := range categories {
		assert.Equal(t, expected, BMICategory(bmi), "BMICategory(%v)", bmi)
	}

	assert.Equal(t, []string{"weight.range", "height.range"}, ValidateBMI(BMIInput{Weight: 0, Height: 20}).Codes())
}

func TestHeartRate(t *testing.T) {
	res := HeartRate(HeartRateInput{Age: 30, CurrentHR: 140})
	assert.Equal(t, 190.0, res.MaxHR)
	assert.Equal(t, "maximum", res.Method)
	require.Len(t, res.Zones, 5)
	assert.InDelta(t, 95, res.Zones[0].Min, 1e-9)
	assert.InDelta(t, 114, res.Zones[0].Max, 1e-9)
	assert.InDelta(t, 190, res.Zones[4].Max, 1e-9)
	// 140 / 190 = 73.7%
	assert.Equal(t, ZoneAerobic, res.CurrentZone)

	reserve := HeartRate(HeartRateInput{Age: 30, RestingHR: 60})
	assert.Equal(t, "reserve", reserve.Method)
	assert.InDelta(t, 60+130*0.5, reserve.Zones[0].Min, 1e-9)
	assert.Empty(t, reserve.CurrentZone)

	assert.Equal(t, BelowZones, HeartRate(HeartRateInput{Age: 30, CurrentHR: 60}).CurrentZone)
	assert.Equal(t, AboveMaximum, HeartRate(HeartRateInput{Age: 60, CurrentHR: 200}).CurrentZone)

	assert.Equal(t, []string{"age.range", "currentHR.range"}, ValidateHeartRate(HeartRateInput{Age: 121, CurrentHR: 20}).Codes())
	assert.True(t, ValidateHeartRate(HeartRateInput{Age: 50}).Valid())
}

func TestOvulation(t *testing.T) {
	res := Ovulation(OvulationInput{LastPeriod: datetime.MustParseDate("2024-01-01"), CycleLength: 28, PeriodLength: 5})

	assert.Equal(t, "2024-01-15", datetime.FormatDate(res.OvulationDate))
	assert.Equal(t, "2024-01-13", datetime.FormatDate(res.FertileStart))
	assert.Equal(t, "2024-01-16", datetime.FormatDate(res.FertileEnd))
	assert.Equal(t, "2024-01-29", datetime.FormatDate(res.NextPeriod))
	assert.Equal(t, "2024-01-05", datetime.FormatDate(res.PeriodEnd))
	assert.Equal(t, 14, res.OvulationDay)
	assert.Equal(t, "normal", res.CycleType)
}

func TestValidateOvulation(t *testing.T) {
	in := OvulationInput{LastPeriod: today, CycleLength: 28, PeriodLength: 5, AsOf: today}
	assert.True(t, ValidateOvulation(in).Valid(), "today is not in the future")

	in.LastPeriod = today.AddDate(0, 0, 1)
	in.CycleLength = 14
	in.PeriodLength = 11
	assert.Equal(t, []string{"lastPeriodDate.future", "cycleLength.range", "periodLength.range"}, ValidateOvulation(in).Codes())
}

func TestPregnancy(t *testing.T) {
	lmp := Pregnancy(PregnancyInput{Method: MethodLMP, Date: datetime.MustParseDate("2024-03-01"), AsOf: today})
	assert.Equal(t, "2024-12-06", datetime.FormatDate(lmp.DueDate))
	assert.Equal(t, "2024-11-29", datetime.FormatDate(lmp.EarliestDue))
	assert.Equal(t, "2024-12-13", datetime.FormatDate(lmp.LatestDue))
	assert.Equal(t, "2024-03-15", datetime.FormatDate(lmp.ConceptionDate))
	// 2024-03-01 to 2024-06-15 is 106 days.
	assert.Equal(t, 15, lmp.CurrentWeek)
	assert.Equal(t, 1, lmp.CurrentDay)
	assert.Equal(t, 174, lmp.DaysRemaining)
	assert.Equal(t, 2, lmp.Trimester)
	assert.Equal(t, "secondTrimester", lmp.Stage)

	conception := Pregnancy(PregnancyInput{Method: MethodConception, Date: datetime.MustParseDate("2024-03-15"), AsOf: today})
	assert.Equal(t, lmp.DueDate, conception.DueDate)
	assert.Equal(t, lmp.CurrentWeek, conception.CurrentWeek)

	ivf := Pregnancy(PregnancyInput{Method: MethodIVF, Date: datetime.MustParseDate("2024-03-15"), AsOf: today})
	assert.Equal(t, "2024-12-06", datetime.FormatDate(ivf.DueDate))

	future := Pregnancy(PregnancyInput{Method: MethodLMP, Date: today.AddDate(0, 0, 3), AsOf: today})
	assert.Equal(t, 0, future.CurrentWeek)
	assert.Equal(t, 0, future.CurrentDay)
	assert.Equal(t, 1, future.Trimester)
}

func TestTrimester(t *testing.T) {
	for week, expected := range map[int]int{0: 1, 12: 1, 13: 2, 26: 2, 27: 3, 41: 3} {
		assert.Equal(t, expected, Trimester(week), "Trimester(%d)", week)
	}
}

func TestValidatePregnancy(t *testing.T) {
	ok := PregnancyInput{Method: MethodLMP, Date: today.AddDate(0, 0, 7), AsOf: today}
	assert.True(t, ValidatePregnancy(ok).Valid())

	tooLate := PregnancyInput{Method: MethodLMP, Date: today.AddDate(0, 0, 8), AsOf: today}
	assert.Equal(t, []string{"date.future"}, ValidatePregnancy(tooLate).Codes())

	tooOld := PregnancyInput{Method: "guess", Date: today.AddDate(-2, 0, -1), AsOf: today}
	assert.Equal(t, []string{"method.invalid", "date.tooOld"}, ValidatePregnancy(tooOld).Codes())
}

func TestCalculatorsThroughGenericInput(t *testing.T) {
	reg, err := calculator.NewRegistry(Calculators()...)
	require.NoError(t, err)

	runner := calculator.NewRunner(nil, reg, &datetime.FixedClock{FixedNow: today})

	out, err := runner.Run(BloodPressureID, calculator.Input{"age": 35, "systolic": "125", "diastolic": 78})
	require.NoError(t, err)
	require.True(t, out.Valid)
	assert.Equal(t, Elevated, out.Result.(BloodPressureResult).Category)

	out, err = runner.Run(OvulationID, calculator.Input{"lastPeriodDate": "2024-01-01", "cycleLength": 28})
	require.NoError(t, err)
	require.True(t, out.Valid, "errors: %v", out.Errors.Codes())
	assert.Equal(t, "2024-01-15", datetime.FormatDate(out.Result.(OvulationResult).OvulationDate))

	out, err = runner.Run(OvulationID, calculator.Input{"cycleLength": 28})
	require.NoError(t, err)
	assert.Equal(t, []string{"lastPeriodDate.required"}, out.Errors.Codes())

	out, err = runner.Run(PregnancyID, calculator.Input{"date": "2024-03-01"})
	require.NoError(t, err)
	require.True(t, out.Valid)
	assert.Equal(t, 15, out.Result.(PregnancyResult).CurrentWeek)

	out, err = runner.Run(BMIID, calculator.Input{"weight": 70})
	require.NoError(t, err)
	assert.Equal(t, []string{"height.required"}, out.Errors.Codes())
}
