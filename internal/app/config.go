package app

import "sync"

// Constants
const (
	DefaultCountry = "CO"
	DateLayout     = "2006-01-02"

	// Error messages
	ErrEditModeDisabled  = "Edit mode disabled"
	ErrInvalidDateFormat = "Invalid date format"
	ErrInvalidYear       = "Invalid year"
	ErrInvalidIncrement  = "Invalid increment"
	ErrInvalidObserved   = "Invalid observed flag"
	ErrInvalidFormat     = "Invalid format"
	ErrInvalidName       = "Holiday name must not be empty"
	ErrCountryNotFound   = "Country not available"
	ErrInternalServer    = "Internal server error"

	// Mode strings
	ModeServe = "serve"
	ModeEdit  = "edit"

	// ICS constants
	ICSProductID = "-//Workingdays//Holiday Calendar//EN"
	ICSTimezone  = "America/Bogota"
)

// Global variables
var (
	EditMode bool

	// Custom holiday overrides maintained through the edit endpoints and
	// applied to every calendar the handlers build. Kept in memory only:
	// calendars are computed on demand, never stored.
	OverridesMutex sync.RWMutex
	addedHolidays  = map[string]string{}
	removedDates   = map[string]struct{}{}
)
