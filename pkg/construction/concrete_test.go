package construction

import (
	"math"
	"testing"
)

func TestConcrete(t *testing.T) {
	tests := []struct {
		name     string
		input    ConcreteInput
		cement   float64
		bags     int
		sand     float64
		gravel   float64
		water    float64
		volumeM3 float64
	}{
		{
			name:     "M200 with 1:2:4",
			input:    ConcreteInput{Volume: 7, VolumeUnit: "m3", Grade: "M200", CementProportion: 1, SandProportion: 2, GravelProportion: 4, WaterCementRatio: 0.5},
			cement:   280,
			bags:     6,
			sand:     1460,
			gravel:   5000,
			water:    140,
			volumeM3: 7,
		},
		{
			name:     "liters are converted",
			input:    ConcreteInput{Volume: 500, VolumeUnit: "liters", Grade: "M400", CementProportion: 1, SandProportion: 1, GravelProportion: 2, WaterCementRatio: 0.4},
			cement:   55,
			bags:     2,
			sand:     83.75,
			gravel:   312.5,
			water:    22,
			volumeM3: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Concrete(tt.input)
			for _, c := range []struct {
				field         string
				got, expected float64
			}{
				{"VolumeM3", res.VolumeM3, tt.volumeM3},
				{"CementKg", res.CementKg, tt.cement},
				{"SandKg", res.SandKg, tt.sand},
				{"GravelKg", res.GravelKg, tt.gravel},
				{"WaterLiters", res.WaterLiters, tt.water},
			} {
				if math.Abs(c.got-c.expected) > 1e-9 {
					t.Errorf("%s = %v, expected %v", c.field, c.got, c.expected)
				}
			}
			if res.CementBags != tt.bags {
				t.Errorf("CementBags = %d, expected %d", res.CementBags, tt.bags)
			}
		})
	}
}

func TestValidateConcrete(t *testing.T) {
	bad := ConcreteInput{Volume: 0, VolumeUnit: "gallons", Grade: "M500", WaterCementRatio: 1.5}
	expected := []string{"volume.positive", "volumeUnit.invalid", "grade.invalid", "cementProportion.positive",
		"sandProportion.positive", "gravelProportion.positive", "waterCementRatio.range"}

	codes := ValidateConcrete(bad).Codes()
	if len(codes) != len(expected) {
		t.Fatalf("ValidateConcrete() = %v, expected %v", codes, expected)
	}
	for i := range codes {
		if codes[i] != expected[i] {
			t.Errorf("ValidateConcrete()[%d] = %s, expected %s", i, codes[i], expected[i])
		}
	}
}

func TestGradeNames(t *testing.T) {
	names := GradeNames()
	if len(names) != 6 || names[0] != "M100" || names[5] != "M400" {
		t.Errorf("GradeNames() = %v", names)
	}
}
