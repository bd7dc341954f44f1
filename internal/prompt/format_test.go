package prompt

import (
	"math"
	"testing"
	"time"
)

func TestDigitLength(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 1},
		{7, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{9999, 4},
		{math.MaxUint64, 20},
	}

	for _, tt := range tests {
		if got := DigitLength(tt.n); got != tt.want {
			t.Errorf("DigitLength(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestDayOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th",
		30: "th", 31: "st",
	}

	for day, want := range tests {
		if got := DayOrdinal(day); got != want {
			t.Errorf("DayOrdinal(%d) = %q, want %q", day, got, want)
		}
	}
}

func TestFractionOf(t *testing.T) {
	tests := []struct {
		hour int
		want DayFraction
	}{
		{0, Dawn},
		{5, Dawn},
		{6, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Night},
		{23, Night},
	}

	for _, tt := range tests {
		at := time.Date(2024, time.May, 1, tt.hour, 30, 0, 0, time.UTC)
		if got := FractionOf(at); got != tt.want {
			t.Errorf("FractionOf(%02dh30m) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestZshHelpers(t *testing.T) {
	if got := colorize("x", Magenta); got != "%F{5}x%f" {
		t.Errorf("colorize() = %q", got)
	}
	if got := whenRoot("#"); got != "%(#.#.)" {
		t.Errorf("whenRoot() = %q", got)
	}
	if got := byExitCode("ok", "ko"); got != "%(?.ok.ko)" {
		t.Errorf("byExitCode() = %q", got)
	}
	if got := whenJobs("j"); got != "%(1j.j.)" {
		t.Errorf("whenJobs() = %q", got)
	}
}
