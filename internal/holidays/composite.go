package holidays

import (
	"fmt"
	"slices"
	"strings"
)

// compositeRules populates a combined calendar from an ordered list of
// constituent calendars. Constituents are populated for the target year and
// merged in reverse registration order, so on conflicting dates the
// first-registered calendar's label wins (it is merged last, and the
// merge-on-insert rule keeps the existing entry on substring matches).
type compositeRules struct {
	parts []*Calendar
}

func (cr *compositeRules) Code() string {
	var codes []string
	for _, part := range cr.parts {
		if code := part.Country(); !slices.Contains(codes, code) {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, ",")
}

func (cr *compositeRules) Populate(c *Calendar, year int) {
	for i := len(cr.parts) - 1; i >= 0; i-- {
		part := cr.parts[i]
		part.rules.Populate(part, year)
		for d, label := range part.entries {
			c.insert(d, label)
		}
	}
}

// constituents flattens a calendar into its ordered parts.
func constituents(c *Calendar) []*Calendar {
	if cr, ok := c.rules.(*compositeRules); ok {
		return cr.parts
	}
	return []*Calendar{c}
}

// combineIdent concatenates two identifiers when they differ.
func combineIdent(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "" || a == b:
		return a
	default:
		return a + "," + b
	}
}

// Combine merges two calendars into one logical union. The result holds
// references to the constituents (reading but never mutating them), unions
// their requested years, ORs their expand and observed flags, and is
// populated immediately for every unioned year.
func Combine(a, b *Calendar) *Calendar {
	parts := make([]*Calendar, 0, 2)
	parts = append(parts, constituents(a)...)
	parts = append(parts, constituents(b)...)
	c := &Calendar{
		rules:       &compositeRules{parts: parts},
		entries:     map[Date]string{},
		years:       map[int]struct{}{},
		expand:      a.expand || b.expand,
		observed:    a.observed || b.observed,
		subdivision: combineIdent(a.subdivision, b.subdivision),
	}
	for year := range a.years {
		c.years[year] = struct{}{}
	}
	for year := range b.years {
		c.years[year] = struct{}{}
	}
	for _, year := range c.Years() {
		c.rules.Populate(c, year)
	}
	return c
}

// Add combines the calendar with another. The additive identity (nil or the
// integer 0) returns the calendar unchanged, so a sequence of calendars can
// be folded by repeated addition; any other non-calendar operand is an
// invalid-type error.
func (c *Calendar) Add(other any) (*Calendar, error) {
	switch o := other.(type) {
	case nil:
		return c, nil
	case int:
		if o == 0 {
			return c, nil
		}
		return nil, fmt.Errorf("%w: int %d", ErrCombineOperand, o)
	case *Calendar:
		return Combine(c, o), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrCombineOperand, other)
	}
}

// Sum folds any number of calendars with Combine, starting from the
// additive identity. Summing nothing returns nil.
func Sum(cals ...*Calendar) *Calendar {
	var total *Calendar
	for _, cal := range cals {
		if total == nil {
			total = cal
			continue
		}
		total = Combine(total, cal)
	}
	return total
}
