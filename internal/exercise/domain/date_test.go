package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/AlibekovAA/exercise-tracker/internal/common/clock"
)

func TestParseDate_AcceptedLayouts(t *testing.T) {
	want := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		raw  string
	}{
		{"iso", "2023-01-05"},
		{"rfc3339", "2023-01-05T14:30:00Z"},
		{"display", "Thu Jan 05 2023"},
		{"surrounding whitespace", "  2023-01-05  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.raw)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"garbage", "not-a-date"},
		{"out of range day", "2023-02-30"},
		{"out of range month", "2023-13-01"},
		{"partial", "2023-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDate(tc.raw)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}

func TestNormalizeDate_AbsentDefaultsToToday(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 3, 15, 18, 45, 12, 0, time.UTC))

	got, err := NormalizeDate("", clk)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalizeDate_PresentMustParse(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	if _, err := NormalizeDate("garbage", clk); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFormatDay(t *testing.T) {
	d := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDay(d); got != "Thu Jan 05 2023" {
		t.Errorf("expected Thu Jan 05 2023, got %s", got)
	}
}

func TestFormatDay_Idempotent(t *testing.T) {
	first := FormatDay(time.Date(2023, 2, 10, 9, 30, 0, 0, time.UTC))

	reparsed, err := ParseDate(first)
	if err != nil {
		t.Fatalf("expected display format to re-parse, got %v", err)
	}
	if second := FormatDay(reparsed); second != first {
		t.Errorf("expected %s after re-format, got %s", first, second)
	}
}

func TestDay_StripsTimeOfDay(t *testing.T) {
	d := Day(time.Date(2023, 6, 1, 23, 59, 59, 0, time.UTC))
	want := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("expected %v, got %v", want, d)
	}
}
