package holidays

import "time"

// ObservedSuffix marks an entry that was shifted by an observed policy.
const ObservedSuffix = " (Observed)"

// Basis selects how a rule derives its raw date for a year.
type Basis int

const (
	// FixedDate resolves to the rule's month and day in the target year.
	FixedDate Basis = iota
	// EasterOffset resolves to Western Easter Sunday plus Days.
	EasterOffset
	// OrthodoxEasterOffset resolves to Orthodox Easter Sunday plus Days.
	OrthodoxEasterOffset
	// WeekdayBeforeEaster resolves to the last Weekday on or before Western
	// Easter Sunday.
	WeekdayBeforeEaster
	// WeekdayAfterEaster resolves to the first Weekday on or after Western
	// Easter Sunday.
	WeekdayAfterEaster
)

// Policy selects how a rule reacts to the observed setting.
type Policy int

const (
	// KeepAlways records the raw date regardless of its weekday.
	KeepAlways Policy = iota
	// DropOnWeekend skips the holiday for the year when the raw date falls
	// on a weekend and observed mode is on.
	DropOnWeekend
	// MoveToMonday shifts the holiday to the next Monday on or after the raw
	// date, with an "(Observed)" label suffix, when observed mode is on and
	// the raw date is not already a Monday. The Emiliani Law rule.
	MoveToMonday
)

// Rule describes one holiday of a country's calendar.
type Rule struct {
	Name    string
	Basis   Basis
	Month   time.Month
	Day     int
	Days    int          // day offset for the Easter bases
	Weekday time.Weekday // target weekday for the weekday bases

	Policy Policy

	// Subdivisions restricts the rule to the named provinces or states.
	// Empty means nationwide.
	Subdivisions []string
}

// Resolve computes the rule's raw date for the given year.
func (r Rule) Resolve(year int) Date {
	switch r.Basis {
	case EasterOffset:
		return Easter(year).AddDays(r.Days)
	case OrthodoxEasterOffset:
		return OrthodoxEaster(year).AddDays(r.Days)
	case WeekdayBeforeEaster:
		return Easter(year).PrevWeekday(r.Weekday)
	case WeekdayAfterEaster:
		return Easter(year).NextWeekday(r.Weekday)
	default:
		return NewDate(year, r.Month, r.Day)
	}
}

// Observe applies the rule's policy to a raw date. It returns the effective
// date and label, and whether the holiday is recognized at all that year.
func (r Rule) Observe(raw Date, observed bool) (Date, string, bool) {
	switch r.Policy {
	case DropOnWeekend:
		if observed && raw.IsWeekend() {
			return Date{}, "", false
		}
	case MoveToMonday:
		if observed && raw.Weekday() != time.Monday {
			return raw.NextWeekday(time.Monday), r.Name + ObservedSuffix, true
		}
	}
	return raw, r.Name, true
}
