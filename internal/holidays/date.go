package holidays

import (
	"fmt"
	"time"
)

// Date is a plain calendar date (year, month, day). It carries no time-of-day
// component, so comparisons and arithmetic use calendar-date semantics.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month and day. Out-of-range
// values are normalized the same way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DateOf strips the time-of-day component from t.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns the date as a time.Time.
// Use noon to avoid timezone issues when formatting to YYYY-MM-DD.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaysUntil returns the number of days from d to other (negative if other is
// earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// NextWeekday returns the first date on or after d that falls on wd.
func (d Date) NextWeekday(wd time.Weekday) Date {
	return d.AddDays((int(wd) - int(d.Weekday()) + 7) % 7)
}

// PrevWeekday returns the last date on or before d that falls on wd.
func (d Date) PrevWeekday(wd time.Weekday) Date {
	return d.AddDays(-((int(d.Weekday()) - int(wd) + 7) % 7))
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// dateLayouts are the string representations ParseDate accepts.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate normalizes a calendar key into a Date. It accepts a Date, a
// time.Time (the time of day is discarded), a numeric epoch-seconds
// timestamp, or a parseable date string. Unparseable strings return
// ErrDateFormat; any other type returns ErrKeyType.
func ParseDate(key any) (Date, error) {
	switch v := key.(type) {
	case Date:
		return v, nil
	case time.Time:
		return DateOf(v), nil
	case int:
		return DateOf(time.Unix(int64(v), 0).UTC()), nil
	case int64:
		return DateOf(time.Unix(v, 0).UTC()), nil
	case float64:
		return DateOf(time.Unix(int64(v), 0).UTC()), nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return DateOf(t), nil
			}
		}
		return Date{}, fmt.Errorf("%w: %q", ErrDateFormat, v)
	default:
		return Date{}, fmt.Errorf("%w: %T", ErrKeyType, key)
	}
}
