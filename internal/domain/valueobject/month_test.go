// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	t.Run("parses YYYY-MM and normalizes to first day UTC", func(t *testing.T) {
		m, err := ParseMonth("2025-09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
		if !m.Time().Equal(want) {
			t.Errorf("expected %v, got %v", want, m.Time())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"2025-9", "2025/09", "202509", "2025-13", ""} {
			if _, err := ParseMonth(input); err == nil {
				t.Errorf("expected error for %q", input)
			}
		}
	})
}

func TestMonthOf(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	m := MonthOf(time.Date(2025, time.March, 17, 23, 45, 0, 0, loc))
	if got := m.String(); got != "2025-03" {
		t.Errorf("expected 2025-03, got %s", got)
	}
	if m.Time().Day() != 1 {
		t.Errorf("expected day 1, got %d", m.Time().Day())
	}
}

func TestMonthArithmetic(t *testing.T) {
	m := NewMonth(2025, time.December)

	if got := m.Next().String(); got != "2026-01" {
		t.Errorf("Next: expected 2026-01, got %s", got)
	}
	if got := m.Prev().String(); got != "2025-11" {
		t.Errorf("Prev: expected 2025-11, got %s", got)
	}
	if got := m.AddMonths(3).String(); got != "2026-03" {
		t.Errorf("AddMonths(3): expected 2026-03, got %s", got)
	}
	if got := m.AddMonths(-13).String(); got != "2024-11" {
		t.Errorf("AddMonths(-13): expected 2024-11, got %s", got)
	}
}

func TestMonthComparison(t *testing.T) {
	jan := NewMonth(2025, time.January)
	feb := NewMonth(2025, time.February)

	if !jan.Before(feb) {
		t.Error("expected January before February")
	}
	if !feb.After(jan) {
		t.Error("expected February after January")
	}
	if !jan.Equal(MonthOf(time.Date(2025, time.January, 28, 12, 0, 0, 0, time.UTC))) {
		t.Error("expected months within the same calendar month to be equal")
	}
}
