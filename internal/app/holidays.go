package app

import (
	"log"

	"github.com/Jdash99/workingdays-back/internal/holidays"
)

// NewCountryCalendar builds a holiday calendar for a registered country and
// applies the custom overrides maintained through the edit endpoints.
func NewCountryCalendar(country string, opts ...holidays.Option) (*holidays.Calendar, error) {
	cal, err := holidays.ForCountry(country, opts...)
	if err != nil {
		return nil, err
	}

	OverridesMutex.RLock()
	defer OverridesMutex.RUnlock()
	for date, name := range addedHolidays {
		if err := cal.Insert(date, name); err != nil {
			log.Printf("Error applying holiday override %s: %v", date, err)
		}
	}
	for date := range removedDates {
		if _, err := cal.Remove(date, ""); err != nil {
			log.Printf("Error applying holiday removal %s: %v", date, err)
		}
	}
	return cal, nil
}

// YearEvents returns a country's holidays for one year, sorted by date.
func YearEvents(cal *holidays.Calendar, year int) ([]Event, error) {
	dates, err := cal.Range(holidays.NewDate(year, 1, 1), holidays.NewDate(year+1, 1, 1))
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(dates))
	for _, d := range dates {
		name, _, err := cal.Get(d)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{Date: d.String(), Name: name})
	}
	SortEventsByDate(events)
	return events, nil
}

// AddOverride records a custom holiday applied to every future calendar.
// A date marked as removed becomes a holiday again.
func AddOverride(date, name string) {
	OverridesMutex.Lock()
	defer OverridesMutex.Unlock()
	delete(removedDates, date)
	addedHolidays[date] = name
}

// RemoveOverride marks a date as holiday-free in every future calendar.
func RemoveOverride(date string) {
	OverridesMutex.Lock()
	defer OverridesMutex.Unlock()
	delete(addedHolidays, date)
	removedDates[date] = struct{}{}
}

// ResetOverrides drops all custom overrides.
func ResetOverrides() {
	OverridesMutex.Lock()
	defer OverridesMutex.Unlock()
	addedHolidays = map[string]string{}
	removedDates = map[string]struct{}{}
}
