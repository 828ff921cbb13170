package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// writeEvent writes one all-day VEVENT block (helper for ICS generation)
func writeEvent(w io.Writer, country string, event Event) {
	eventDate, err := time.Parse(DateLayout, event.Date)
	if err != nil {
		return
	}

	// UID must be stable for proper calendar updates
	uid := fmt.Sprintf("%s-%s@workingdays", event.Date, country)

	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:%s\n", uid)
	fmt.Fprintf(w, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
	fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", eventDate.Format("20060102"))
	fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", eventDate.AddDate(0, 0, 1).Format("20060102"))
	fmt.Fprintf(w, "SUMMARY:%s\n", event.Name)
	fmt.Fprintf(w, "DESCRIPTION:Public holiday in %s\n", country)
	fmt.Fprintln(w, "TRANSP:TRANSPARENT")
	fmt.Fprintln(w, "END:VEVENT")
}

// GenerateICS generates a downloadable iCalendar (ICS) file of holidays
func GenerateICS(w http.ResponseWriter, country string, year int, events []Event) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=holidays_%s_%d.ics", country, year))

	// ICS header
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:Public Holidays %s %d\n", country, year)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", ICSTimezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	for _, event := range events {
		writeEvent(w, country, event)
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

// GenerateCSV generates a CSV file of holidays
func GenerateCSV(w http.ResponseWriter, country string, year int, events []Event) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=holidays_%s_%d.csv", country, year))

	// CSV header
	fmt.Fprintln(w, "Date,Holiday")

	for _, event := range events {
		fmt.Fprintf(w, "%s,%q\n", event.Date, event.Name)
	}
}

// GenerateJSON generates a JSON file of holidays
func GenerateJSON(w http.ResponseWriter, country string, year int, events []Event) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=holidays_%s_%d.json", country, year))

	data := map[string]any{
		"country":  country,
		"year":     year,
		"holidays": events,
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// GenerateSubscriptionICS generates an iCalendar (ICS) subscription feed.
// Unlike GenerateICS, this is designed for calendar subscriptions:
// - No Content-Disposition attachment header (inline content)
// - Includes METHOD:PUBLISH and a refresh interval header
func GenerateSubscriptionICS(w http.ResponseWriter, country string, events []Event) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	// No Content-Disposition header - calendar apps need inline content for subscriptions

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintln(w, "METHOD:PUBLISH") // Required for subscriptions
	fmt.Fprintf(w, "X-WR-CALNAME:Public Holidays %s\n", country)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", ICSTimezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")
	fmt.Fprintln(w, "X-PUBLISHED-TTL:PT24H") // Holidays rarely change

	for _, event := range events {
		writeEvent(w, country, event)
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}
