package datetime

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "Calendar date", input: "2024-01-01", expected: "2024-01-01"},
		{name: "Padded calendar date", input: "  2024-02-29 ", expected: "2024-02-29"},
		{name: "RFC 3339 timestamp", input: "2024-03-10T15:04:05Z", expected: "2024-03-10"},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "01/02/2024", wantErr: true},
		{name: "Impossible date", input: "2023-02-29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := FormatDate(result); got != tt.expected {
				t.Errorf("ParseDate(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMustParseDatePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustParseDate to panic on invalid input")
		}
	}()
	MustParseDate("not-a-date")
}

func TestAddDays(t *testing.T) {
	base := MustParseDate("2024-01-01")
	if got := FormatDate(AddDays(base, 14)); got != "2024-01-15" {
		t.Errorf("AddDays(+14) = %s, expected 2024-01-15", got)
	}
	if got := FormatDate(AddDays(base, -1)); got != "2023-12-31" {
		t.Errorf("AddDays(-1) = %s, expected 2023-12-31", got)
	}
	if got := FormatDate(AddDays(MustParseDate("2024-02-28"), 1)); got != "2024-02-29" {
		t.Errorf("AddDays across leap day = %s, expected 2024-02-29", got)
	}
}

func TestDaysBetween(t *testing.T) {
	start := MustParseDate("2024-01-01")
	end := MustParseDate("2024-12-31")
	if got := DaysBetween(start, end); got != 365 {
		t.Errorf("DaysBetween() = %d, expected 365", got)
	}
	if got := DaysBetween(end, start); got != -365 {
		t.Errorf("DaysBetween() reversed = %d, expected -365", got)
	}

	if got := DaysBetween(MustParseDate("1700-01-01"), MustParseDate("2024-01-01")); got != 118338 {
		t.Errorf("DaysBetween() over 324 years = %d, expected 118338", got)
	}
	if got := DaysBetween(MustParseDate("2024-03-10"), MustParseDate("1024-03-10")); got != -365243 {
		t.Errorf("DaysBetween() back 1000 years = %d, expected -365243", got)
	}

	moscow := time.FixedZone("MSK", 3*60*60)
	late := time.Date(2024, 1, 1, 23, 30, 0, 0, moscow)
	if got := DaysBetween(late, MustParseDate("2024-01-02")); got != 1 {
		t.Errorf("DaysBetween() with zoned start = %d, expected 1", got)
	}
}

func TestBreakdown(t *testing.T) {
	tests := []struct {
		start, end          string
		years, months, days int
	}{
		{"2020-01-15", "2024-03-10", 4, 1, 24},
		{"2024-01-31", "2024-03-01", 0, 1, 1},
		{"2024-05-05", "2024-05-05", 0, 0, 0},
		{"2023-12-20", "2024-01-10", 0, 0, 21},
	}

	for _, tt := range tests {
		y, m, d := Breakdown(MustParseDate(tt.start), MustParseDate(tt.end))
		if y != tt.years || m != tt.months || d != tt.days {
			t.Errorf("Breakdown(%s, %s) = %dy %dm %dd, expected %dy %dm %dd",
				tt.start, tt.end, y, m, d, tt.years, tt.months, tt.days)
		}
	}
}

func TestFixedClock(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	clock := &FixedClock{FixedNow: fixed}
	if !clock.Now().Equal(fixed) {
		t.Fatalf("FixedClock.Now() = %v, expected %v", clock.Now(), fixed)
	}
	later := fixed.Add(time.Hour)
	clock.SetNow(later)
	if !clock.Now().Equal(later) {
		t.Fatalf("FixedClock.Now() after SetNow = %v, expected %v", clock.Now(), later)
	}
}

func TestAddMonthsClamped(t *testing.T) {
	if got := FormatDate(AddMonthsClamped(MustParseDate("2024-01-31"), 1)); got != "2024-02-29" {
		t.Errorf("AddMonthsClamped(Jan 31, 1) = %s, expected 2024-02-29", got)
	}
	if got := FormatDate(AddMonthsClamped(MustParseDate("2023-10-31"), 4)); got != "2024-02-29" {
		t.Errorf("AddMonthsClamped(Oct 31, 4) = %s, expected 2024-02-29", got)
	}
	if got := FormatDate(AddMonthsClamped(MustParseDate("2024-03-15"), -2)); got != "2024-01-15" {
		t.Errorf("AddMonthsClamped(Mar 15, -2) = %s, expected 2024-01-15", got)
	}
}
