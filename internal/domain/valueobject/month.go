// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"time"
)

// MonthLayout is the wire format for calendar months (e.g. "2025-09").
const MonthLayout = "2006-01"

// Month represents a single calendar month, normalized to the first day
// of the month at midnight UTC.
type Month struct {
	t time.Time
}

// ParseMonth parses a month in YYYY-MM format.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(t), nil
}

// MonthOf returns the month containing the given time.
func MonthOf(t time.Time) Month {
	return Month{t: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// NewMonth builds a month from a year and a calendar month.
func NewMonth(year int, month time.Month) Month {
	return Month{t: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

// Time returns the first day of the month at midnight UTC.
func (m Month) Time() time.Time {
	return m.t
}

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool {
	return m.t.IsZero()
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return Month{t: m.t.AddDate(0, 1, 0)}
}

// Prev returns the preceding calendar month.
func (m Month) Prev() Month {
	return Month{t: m.t.AddDate(0, -1, 0)}
}

// AddMonths returns the month n calendar months later (earlier when n < 0).
func (m Month) AddMonths(n int) Month {
	return Month{t: m.t.AddDate(0, n, 0)}
}

// After reports whether m is strictly after other.
func (m Month) After(other Month) bool {
	return m.t.After(other.t)
}

// Before reports whether m is strictly before other.
func (m Month) Before(other Month) bool {
	return m.t.Before(other.t)
}

// Equal reports whether both values denote the same calendar month.
func (m Month) Equal(other Month) bool {
	return m.t.Equal(other.t)
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return m.t.Format(MonthLayout)
}
