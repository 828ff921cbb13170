package holidays

import "errors"

// Sentinel errors returned by calendar operations. Callers match them with
// errors.Is; the wrapped message carries the offending value.
var (
	// ErrKeyType reports a key whose Go type cannot represent a date.
	ErrKeyType = errors.New("cannot convert key type to date")

	// ErrDateFormat reports a string key that does not parse as a date.
	ErrDateFormat = errors.New("cannot parse date from string")

	// ErrNotFound reports a removal of a date with no holiday entry.
	ErrNotFound = errors.New("no holiday entry for date")

	// ErrMissingBound reports a range query without both bounds.
	ErrMissingBound = errors.New("both start and stop must be given")

	// ErrZeroStep reports a range query whose resolved step is zero.
	ErrZeroStep = errors.New("step must not be zero")

	// ErrCombineOperand reports combining a calendar with something that is
	// neither a calendar nor the additive identity.
	ErrCombineOperand = errors.New("cannot combine calendar with operand")

	// ErrUnknownCountry reports a country code with no registered calendar.
	ErrUnknownCountry = errors.New("country not available")
)
