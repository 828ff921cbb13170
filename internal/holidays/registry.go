package holidays

import (
	"fmt"
	"slices"
)

// registry maps country codes to calendar constructors.
var registry = map[string]func(opts ...Option) *Calendar{}

// Register makes a country calendar constructor available to ForCountry.
func Register(code string, factory func(opts ...Option) *Calendar) {
	registry[code] = factory
}

// ForCountry builds a calendar for a registered country code.
func ForCountry(code string, opts ...Option) (*Calendar, error) {
	factory, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	return factory(opts...), nil
}

// Countries returns the registered country codes in ascending order.
func Countries() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
