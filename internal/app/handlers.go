package app

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Jdash99/workingdays-back/internal/busdays"
	"github.com/Jdash99/workingdays-back/internal/holidays"
)

// GetConfig returns the application configuration
func GetConfig(w http.ResponseWriter, r *http.Request) {
	config := map[string]any{
		"countries":      holidays.Countries(),
		"defaultCountry": DefaultCountry,
		"currentYear":    time.Now().Year(),
		"editMode":       EditMode,
	}
	WriteJSON(w, config)
}

// queryCountry resolves the country query parameter, defaulting to Colombia
func queryCountry(r *http.Request) string {
	if country := r.URL.Query().Get("country"); country != "" {
		return country
	}
	return DefaultCountry
}

// queryDate parses a YYYY-MM-DD query parameter
func queryDate(r *http.Request, name string) (holidays.Date, error) {
	t, err := time.Parse(DateLayout, r.URL.Query().Get(name))
	if err != nil {
		return holidays.Date{}, err
	}
	return holidays.DateOf(t), nil
}

// HandleAnalyze analyzes a date range: total days, working days, weekend
// days and the public holidays within it
// Query params: start_date, end_date (YYYY-MM-DD, end inclusive), country
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	start, err := queryDate(r, "start_date")
	if err != nil {
		http.Error(w, ErrInvalidDateFormat, http.StatusBadRequest)
		return
	}
	end, err := queryDate(r, "end_date")
	if err != nil {
		http.Error(w, ErrInvalidDateFormat, http.StatusBadRequest)
		return
	}

	cal, err := NewCountryCalendar(queryCountry(r))
	if err != nil {
		http.Error(w, ErrCountryNotFound, http.StatusNotFound)
		return
	}

	// include the last day
	stop := end.AddDays(1)

	holidayDates, err := cal.Range(start, stop)
	if err != nil {
		log.Printf("Error querying holiday range: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	publicHolidays := make(map[string]string, len(holidayDates))
	for _, d := range holidayDates {
		name, _, err := cal.Get(d)
		if err != nil {
			log.Printf("Error looking up holiday %s: %v", d, err)
			http.Error(w, ErrInternalServer, http.StatusInternalServerError)
			return
		}
		publicHolidays[d.String()] = name
	}

	isHoliday := func(d holidays.Date) bool {
		ok, err := cal.Contains(d)
		return err == nil && ok
	}

	WriteJSON(w, AnalyzeResponse{
		Days:           start.DaysUntil(stop),
		WorkingDays:    busdays.Count(start, stop, isHoliday),
		WeekendDays:    busdays.WeekendCount(start, stop),
		PublicHolidays: publicHolidays,
	})
}

// HandleAddWorkingDays projects a date forward (or backward) by a number of
// working days, skipping weekends and public holidays
// Query params: start_date (YYYY-MM-DD), increment (integer), country
func HandleAddWorkingDays(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	start, err := queryDate(r, "start_date")
	if err != nil {
		http.Error(w, ErrInvalidDateFormat, http.StatusBadRequest)
		return
	}
	increment, err := strconv.Atoi(r.URL.Query().Get("increment"))
	if err != nil {
		http.Error(w, ErrInvalidIncrement, http.StatusBadRequest)
		return
	}

	cal, err := NewCountryCalendar(queryCountry(r))
	if err != nil {
		http.Error(w, ErrCountryNotFound, http.StatusNotFound)
		return
	}

	isHoliday := func(d holidays.Date) bool {
		ok, err := cal.Contains(d)
		return err == nil && ok
	}
	end := busdays.Offset(start, increment, isHoliday)

	WriteJSON(w, end.String())
}

// holidaysRequest resolves the shared country/year/observed parameters of
// the listing and download endpoints
func holidaysRequest(w http.ResponseWriter, r *http.Request) (*holidays.Calendar, string, int, bool) {
	country := queryCountry(r)

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		var err error
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			http.Error(w, ErrInvalidYear, http.StatusBadRequest)
			return nil, "", 0, false
		}
	}

	observed := true
	if observedStr := r.URL.Query().Get("observed"); observedStr != "" {
		var err error
		observed, err = strconv.ParseBool(observedStr)
		if err != nil {
			http.Error(w, ErrInvalidObserved, http.StatusBadRequest)
			return nil, "", 0, false
		}
	}

	cal, err := NewCountryCalendar(country, holidays.WithYears(year), holidays.WithObserved(observed))
	if err != nil {
		http.Error(w, ErrCountryNotFound, http.StatusNotFound)
		return nil, "", 0, false
	}
	return cal, country, year, true
}

// HandleHolidays returns a country's public holidays for one year
// Query params: country, year (defaults to current), observed (default true)
func HandleHolidays(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cal, country, year, ok := holidaysRequest(w, r)
	if !ok {
		return
	}

	events, err := YearEvents(cal, year)
	if err != nil {
		log.Printf("Error listing holidays: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	WriteJSON(w, HolidaysResponse{
		Country:  country,
		Year:     year,
		Observed: cal.Observed(),
		Holidays: events,
	})
}

// HandleDownload handles holiday calendar downloads in ICS, CSV or JSON
// Query params: country, year, observed, format (ics|csv|json)
func HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cal, country, year, ok := holidaysRequest(w, r)
	if !ok {
		return
	}

	events, err := YearEvents(cal, year)
	if err != nil {
		log.Printf("Error listing holidays: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("format") {
	case "ics":
		GenerateICS(w, country, year, events)
	case "csv":
		GenerateCSV(w, country, year, events)
	case "json":
		GenerateJSON(w, country, year, events)
	default:
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
	}
}

// HandleSubscribe serves an ICS subscription feed of a country's holidays
// from (current year - 1) through (current year + 1)
// URL: /api/subscribe/{country}
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	country := strings.TrimPrefix(r.URL.Path, "/api/subscribe/")
	if country == "" {
		country = DefaultCountry
	}

	currentYear := time.Now().Year()
	cal, err := NewCountryCalendar(country)
	if err != nil {
		http.Error(w, ErrCountryNotFound, http.StatusNotFound)
		return
	}

	var events []Event
	for year := currentYear - 1; year <= currentYear+1; year++ {
		yearEvents, err := YearEvents(cal, year)
		if err != nil {
			log.Printf("Error listing holidays: %v", err)
			http.Error(w, ErrInternalServer, http.StatusInternalServerError)
			return
		}
		events = append(events, yearEvents...)
	}

	GenerateSubscriptionICS(w, country, events)
}

// AddHoliday registers a custom holiday override (edit mode only)
func AddHoliday(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	var req struct {
		Date string `json:"date"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := holidays.ParseDate(req.Date)
	if err != nil {
		http.Error(w, ErrInvalidDateFormat, http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, ErrInvalidName, http.StatusBadRequest)
		return
	}

	AddOverride(date.String(), req.Name)
	WriteJSON(w, map[string]string{"status": "ok"})
}

// DeleteHoliday removes a date from future calendars (edit mode only)
func DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := holidays.ParseDate(req.Date)
	if err != nil {
		http.Error(w, ErrInvalidDateFormat, http.StatusBadRequest)
		return
	}

	RemoveOverride(date.String())
	WriteJSON(w, map[string]string{"status": "ok"})
}
