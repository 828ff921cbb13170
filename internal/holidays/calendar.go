// Package holidays generates country-specific sets of public holidays on the
// fly. A Calendar maps dates to holiday names, populating itself lazily for
// any year a query touches, and supports membership tests, range queries and
// combination of several country calendars into one.
package holidays

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// mergeSeparator joins the labels of distinct holidays sharing a date.
const mergeSeparator = ", "

// Ruleset is the per-country population hook. Populate enumerates the
// country's holidays for a year and inserts them into the calendar.
type Ruleset interface {
	Code() string
	Populate(c *Calendar, year int)
}

// Calendar is a date-to-holiday-name mapping for one country (or a
// combination of countries, see Combine). A Calendar is not safe for
// concurrent mutation; callers sharing an instance across goroutines must
// serialize access.
type Calendar struct {
	rules       Ruleset
	entries     map[Date]string
	years       map[int]struct{}
	expand      bool
	observed    bool
	subdivision string
}

// Option configures a Calendar at construction time.
type Option func(*Calendar)

// WithYears populates the calendar for the given years immediately.
func WithYears(years ...int) Option {
	return func(c *Calendar) {
		for _, y := range years {
			c.years[y] = struct{}{}
		}
	}
}

// WithExpand controls whether queries outside the populated years trigger
// population of the touched year (default true).
func WithExpand(expand bool) Option {
	return func(c *Calendar) { c.expand = expand }
}

// WithObserved controls whether weekend-adjusted holiday rules apply
// (default true).
func WithObserved(observed bool) Option {
	return func(c *Calendar) { c.observed = observed }
}

// WithSubdivision restricts the calendar to a province or state.
func WithSubdivision(subdivision string) Option {
	return func(c *Calendar) { c.subdivision = subdivision }
}

// New builds a calendar for the given ruleset and populates it for every
// year requested via WithYears.
func New(rules Ruleset, opts ...Option) *Calendar {
	c := &Calendar{
		rules:    rules,
		entries:  map[Date]string{},
		years:    map[int]struct{}{},
		expand:   true,
		observed: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, year := range c.Years() {
		c.rules.Populate(c, year)
	}
	return c
}

// Country returns the calendar's country code.
func (c *Calendar) Country() string { return c.rules.Code() }

// Subdivision returns the province or state the calendar is restricted to.
func (c *Calendar) Subdivision() string { return c.subdivision }

// Observed reports whether weekend-adjusted rules apply.
func (c *Calendar) Observed() bool { return c.observed }

// Expand reports whether queries lazily populate unseen years.
func (c *Calendar) Expand() bool { return c.expand }

// Years returns the populated years in ascending order.
func (c *Calendar) Years() []int {
	years := make([]int, 0, len(c.years))
	for year := range c.years {
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// Len returns the number of dates with at least one holiday.
func (c *Calendar) Len() int { return len(c.entries) }

// populateYear runs the country rules for a year not seen before. Population
// is idempotent per year.
func (c *Calendar) populateYear(year int) {
	if _, ok := c.years[year]; ok {
		return
	}
	c.years[year] = struct{}{}
	c.rules.Populate(c, year)
}

// toDate normalizes a key and, when expansion is on, populates the key's
// year.
func (c *Calendar) toDate(key any) (Date, error) {
	d, err := ParseDate(key)
	if err != nil {
		return Date{}, err
	}
	if c.expand {
		c.populateYear(d.Year)
	}
	return d, nil
}

// insert merges an entry for a concrete date. When the date already has an
// entry, the new name is prepended (comma-joined) unless either label
// already contains the other as a substring, in which case the existing
// entry wins.
func (c *Calendar) insert(d Date, name string) {
	if existing, ok := c.entries[d]; ok {
		if !strings.Contains(existing, name) && !strings.Contains(name, existing) {
			c.entries[d] = name + mergeSeparator + existing
		}
		return
	}
	c.entries[d] = name
}

// applyRules resolves each rule for a year through the observed policy and
// inserts the recognized holidays. Rules gated to subdivisions the calendar
// is not restricted to are skipped.
func (c *Calendar) applyRules(rules []Rule, year int) {
	for _, r := range rules {
		if len(r.Subdivisions) > 0 && !slices.Contains(r.Subdivisions, c.subdivision) {
			continue
		}
		if d, label, ok := r.Observe(r.Resolve(year), c.observed); ok {
			c.insert(d, label)
		}
	}
}

// Contains reports whether the key's date has a holiday.
func (c *Calendar) Contains(key any) (bool, error) {
	d, err := c.toDate(key)
	if err != nil {
		return false, err
	}
	_, ok := c.entries[d]
	return ok, nil
}

// Get returns the holiday label for the key's date and whether one exists.
func (c *Calendar) Get(key any) (string, bool, error) {
	d, err := c.toDate(key)
	if err != nil {
		return "", false, err
	}
	label, ok := c.entries[d]
	return label, ok, nil
}

// Names returns the individual holiday names for the key's date, in merge
// order. A date without holidays yields an empty slice.
func (c *Calendar) Names(key any) ([]string, error) {
	label, ok, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var names []string
	for _, name := range strings.Split(label, mergeSeparator) {
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Insert merges a holiday name at the key's date, with the same
// merge-on-conflict semantics as rule population.
func (c *Calendar) Insert(key any, name string) error {
	d, err := c.toDate(key)
	if err != nil {
		return err
	}
	c.insert(d, name)
	return nil
}

// Update inserts several holidays at once. Each argument may be a
// map[Date]string or map[string]string of date to name, a []Date or
// []string of bare dates (inserted with a generic "Holiday" label), or a
// single date key (any representation ParseDate accepts).
func (c *Calendar) Update(args ...any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case map[Date]string:
			for d, name := range v {
				if err := c.Insert(d, name); err != nil {
					return err
				}
			}
		case map[string]string:
			for d, name := range v {
				if err := c.Insert(d, name); err != nil {
					return err
				}
			}
		case []Date:
			for _, d := range v {
				if err := c.Insert(d, "Holiday"); err != nil {
					return err
				}
			}
		case []string:
			for _, d := range v {
				if err := c.Insert(d, "Holiday"); err != nil {
					return err
				}
			}
		default:
			if err := c.Insert(arg, "Holiday"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Remove deletes and returns the entry at the key's date. Without a
// fallback, a missing entry returns ErrNotFound; with one, the fallback is
// returned instead.
func (c *Calendar) Remove(key any, fallback ...string) (string, error) {
	d, err := c.toDate(key)
	if err != nil {
		return "", err
	}
	label, ok := c.entries[d]
	if !ok {
		if len(fallback) > 0 {
			return fallback[0], nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, d)
	}
	delete(c.entries, d)
	return label, nil
}

// resolveStep converts a range-query step into a day count. A nil step means
// one day.
func resolveStep(step any) (int, error) {
	switch v := step.(type) {
	case nil:
		return 1, nil
	case int:
		return v, nil
	case time.Duration:
		return int(v / (24 * time.Hour)), nil
	default:
		return 0, fmt.Errorf("%w: step %T", ErrKeyType, step)
	}
}

// Range returns the holiday dates strictly within [start, stop), walking by
// step days (default one). The sign of the step is corrected to match the
// direction implied by the bounds; a reverse walk yields dates in descending
// order. The step may also be a time.Duration. Missing bounds and zero steps
// are invalid arguments.
func (c *Calendar) Range(start, stop any, step ...any) ([]Date, error) {
	if start == nil || stop == nil {
		return nil, ErrMissingBound
	}

	var rawStep any
	if len(step) > 0 {
		rawStep = step[0]
	}
	days, err := resolveStep(rawStep)
	if err != nil {
		return nil, err
	}
	if days == 0 {
		return nil, ErrZeroStep
	}

	from, err := c.toDate(start)
	if err != nil {
		return nil, err
	}
	to, err := c.toDate(stop)
	if err != nil {
		return nil, err
	}

	diff := from.DaysUntil(to)
	if (diff < 0 && days > 0) || (diff >= 0 && days < 0) {
		days = -days
	}

	var dates []Date
	for delta := 0; (days > 0 && delta < diff) || (days < 0 && delta > diff); delta += days {
		d := from.AddDays(delta)
		if _, ok := c.entries[d]; ok {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// SetObserved toggles the observed mode. Turning it on clears and fully
// repopulates every previously requested year, so dropped and shifted
// holidays are recomputed; turning it off prunes every entry carrying an
// observed marker. Toggling before any population only records the flag.
func (c *Calendar) SetObserved(observed bool) {
	c.observed = observed
	if len(c.entries) == 0 {
		return
	}
	if observed {
		years := c.Years()
		c.years = map[int]struct{}{}
		c.entries = map[Date]string{}
		for _, year := range years {
			c.populateYear(year)
		}
		return
	}
	for d, label := range c.entries {
		if strings.Contains(label, "Observed") {
			delete(c.entries, d)
		}
	}
}

// Equal reports whether both calendars hold the same entries and the same
// configuration (years, expand, observed, subdivision and country identity).
func (c *Calendar) Equal(other *Calendar) bool {
	if other == nil {
		return false
	}
	return maps.Equal(c.entries, other.entries) &&
		maps.Equal(c.years, other.years) &&
		c.expand == other.expand &&
		c.observed == other.observed &&
		c.subdivision == other.subdivision &&
		c.Country() == other.Country()
}
