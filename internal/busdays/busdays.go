// Package busdays implements business-day arithmetic over calendar dates:
// counting working days in a range and projecting a date forward or backward
// by a number of working days, skipping weekends and any dates a holiday
// predicate flags.
package busdays

import (
	"github.com/Jdash99/workingdays-back/internal/holidays"
)

// IsHolidayFunc reports whether a date is a public holiday. A nil func means
// no holidays.
type IsHolidayFunc func(holidays.Date) bool

func isBusinessDay(d holidays.Date, isHoliday IsHolidayFunc) bool {
	if d.IsWeekend() {
		return false
	}
	return isHoliday == nil || !isHoliday(d)
}

// Count returns the number of business days in [start, stop). Reversed
// bounds yield a negative count.
func Count(start, stop holidays.Date, isHoliday IsHolidayFunc) int {
	if stop.Before(start) {
		return -Count(stop, start, isHoliday)
	}
	count := 0
	for d := start; d.Before(stop); d = d.AddDays(1) {
		if isBusinessDay(d, isHoliday) {
			count++
		}
	}
	return count
}

// WeekendCount returns the number of Saturdays and Sundays in [start, stop).
func WeekendCount(start, stop holidays.Date) int {
	count := 0
	for d := start; d.Before(stop); d = d.AddDays(1) {
		if d.IsWeekend() {
			count++
		}
	}
	return count
}

// Offset rolls start forward to the first business day on or after it, then
// advances n business days (backward for negative n).
func Offset(start holidays.Date, n int, isHoliday IsHolidayFunc) holidays.Date {
	d := start
	for !isBusinessDay(d, isHoliday) {
		d = d.AddDays(1)
	}

	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for ; n > 0; n-- {
		d = d.AddDays(step)
		for !isBusinessDay(d, isHoliday) {
			d = d.AddDays(step)
		}
	}
	return d
}
