package timeutil

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		want string
		secs int
	}{
		{"00:00", 0},
		{"00:00", 59},
		{"00:01", 60},
		{"01:30", 5400},
		{"10:05", 36300},
		{"27:00", 97200},
	}

	for _, tc := range cases {
		got := FormatSeconds(tc.secs)
		if got != tc.want {
			t.Errorf("FormatSeconds(%d) = %s, want %s", tc.secs, got, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"01:30", 5400, false},
		{"00:00", 0, false},
		{"8:00", 28800, false},
		{"1h30m", 5400, false},
		{"45m", 2700, false},
		{"01:75", 0, true},
		{"-1h", 0, true},
		{"abc", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected an error", tc.input)
			}

			continue
		}

		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.input, err)
			continue
		}

		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	ref := time.Date(2025, 2, 12, 14, 30, 45, 0, time.UTC)

	start := RoundToStart(ref)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("RoundToStart: got %v", start)
	}

	end := RoundToEnd(ref)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("RoundToEnd: got %v", end)
	}

	if start.Day() != ref.Day() || end.Day() != ref.Day() {
		t.Error("rounding must not change the calendar day")
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		input          string
		twentyFourHour bool
		want           string
	}{
		{"09:30", true, "09:30"},
		{"14:05", true, "14:05"},
		{"14:05", false, "02:05 PM"},
		{"00:15", false, "12:15 AM"},
		{"garbage", false, "garbage"},
	}

	for _, tc := range cases {
		got := FormatClock(tc.input, tc.twentyFourHour)
		if got != tc.want {
			t.Errorf(
				"FormatClock(%q, %v) = %q, want %q",
				tc.input,
				tc.twentyFourHour,
				got,
				tc.want,
			)
		}
	}
}
