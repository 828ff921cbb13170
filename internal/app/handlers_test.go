package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleAnalyze(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/analyze?start_date=2023-01-01&end_date=2023-01-10", nil)
	w := httptest.NewRecorder()

	HandleAnalyze(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp AnalyzeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Days != 10 {
		t.Errorf("Expected 10 days, got %d", resp.Days)
	}
	// Jan 2-6 and Jan 10 are working days; Jan 9 is the observed Epiphany
	if resp.WorkingDays != 6 {
		t.Errorf("Expected 6 working days, got %d", resp.WorkingDays)
	}
	// Jan 1, 7 and 8
	if resp.WeekendDays != 3 {
		t.Errorf("Expected 3 weekend days, got %d", resp.WeekendDays)
	}

	if len(resp.PublicHolidays) != 1 {
		t.Fatalf("Expected 1 public holiday, got %d", len(resp.PublicHolidays))
	}
	name, ok := resp.PublicHolidays["2023-01-09"]
	if !ok {
		t.Fatal("Expected the observed Epiphany on 2023-01-09")
	}
	if !strings.Contains(name, "Epiphany") || !strings.Contains(name, "(Observed)") {
		t.Errorf("Unexpected holiday label: %s", name)
	}
}

func TestHandleAnalyzeErrors(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		method string
		status int
	}{
		{"missing dates", "/api/analyze", "GET", http.StatusBadRequest},
		{"bad start", "/api/analyze?start_date=nope&end_date=2023-01-10", "GET", http.StatusBadRequest},
		{"bad end", "/api/analyze?start_date=2023-01-01&end_date=nope", "GET", http.StatusBadRequest},
		{"unknown country", "/api/analyze?start_date=2023-01-01&end_date=2023-01-10&country=ZZ", "GET", http.StatusNotFound},
		{"wrong method", "/api/analyze?start_date=2023-01-01&end_date=2023-01-10", "POST", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.url, nil)
			w := httptest.NewRecorder()
			HandleAnalyze(w, req)
			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestHandleAddWorkingDays(t *testing.T) {
	// Thursday Jan 5 + 2 working days skips the weekend and the observed
	// Epiphany on Monday Jan 9
	req := httptest.NewRequest("GET", "/api/add-working-days?start_date=2023-01-05&increment=2", nil)
	w := httptest.NewRecorder()

	HandleAddWorkingDays(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var end string
	if err := json.NewDecoder(w.Body).Decode(&end); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if end != "2023-01-10" {
		t.Errorf("Expected 2023-01-10, got %s", end)
	}
}

func TestHandleAddWorkingDaysErrors(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/add-working-days?start_date=2023-01-05&increment=two", nil)
	w := httptest.NewRecorder()
	HandleAddWorkingDays(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/add-working-days?start_date=nope&increment=2", nil)
	w = httptest.NewRecorder()
	HandleAddWorkingDays(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestHandleHolidays(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/holidays?country=CO&year=2023", nil)
	w := httptest.NewRecorder()

	HandleHolidays(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp HolidaysResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Country != "CO" || resp.Year != 2023 || !resp.Observed {
		t.Errorf("Unexpected response metadata: %+v", resp)
	}
	if len(resp.Holidays) != 17 {
		t.Errorf("Expected 17 observed holidays in 2023, got %d", len(resp.Holidays))
	}
	// sorted by date, starting with the observed Epiphany
	if resp.Holidays[0].Date != "2023-01-09" {
		t.Errorf("Expected first holiday on 2023-01-09, got %s", resp.Holidays[0].Date)
	}
}

func TestHandleHolidaysNotObserved(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/holidays?country=CO&year=2023&observed=false", nil)
	w := httptest.NewRecorder()

	HandleHolidays(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp HolidaysResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Holidays) != 18 {
		t.Errorf("Expected 18 holidays without observed mode, got %d", len(resp.Holidays))
	}
	if resp.Holidays[0].Date != "2023-01-01" {
		t.Errorf("Expected New Year's Day first, got %s", resp.Holidays[0].Date)
	}
}

func TestHandleHolidaysErrors(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		status int
	}{
		{"bad year", "/api/holidays?year=nope", http.StatusBadRequest},
		{"bad observed", "/api/holidays?year=2023&observed=maybe", http.StatusBadRequest},
		{"unknown country", "/api/holidays?country=ZZ&year=2023", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.url, nil)
			w := httptest.NewRecorder()
			HandleHolidays(w, req)
			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestHandleDownloadFormats(t *testing.T) {
	for _, format := range []string{"ics", "csv", "json"} {
		req := httptest.NewRequest("GET", "/api/download?country=CO&year=2023&format="+format, nil)
		w := httptest.NewRecorder()
		HandleDownload(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("format %s: expected status 200, got %d", format, w.Code)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "holidays_CO_2023") {
			t.Errorf("format %s: unexpected Content-Disposition %q", format, cd)
		}
	}

	req := httptest.NewRequest("GET", "/api/download?country=CO&year=2023&format=xml", nil)
	w := httptest.NewRecorder()
	HandleDownload(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown format, got %d", w.Code)
	}
}

func TestHandleSubscribe(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/subscribe/CO", nil)
	w := httptest.NewRecorder()

	HandleSubscribe(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "" {
		t.Errorf("Subscription feed must not force a download, got %q", cd)
	}
	body := w.Body.String()
	if !strings.Contains(body, "METHOD:PUBLISH") {
		t.Error("Subscription feed missing METHOD:PUBLISH")
	}
	if !strings.Contains(body, "BEGIN:VEVENT") {
		t.Error("Subscription feed has no events")
	}
}

func TestEditEndpoints(t *testing.T) {
	EditMode = true
	defer func() {
		EditMode = false
		ResetOverrides()
	}()

	// a custom holiday shows up in the analyze result
	req := httptest.NewRequest("POST", "/api/holidays/add",
		strings.NewReader(`{"date": "2023-01-04", "name": "Company Day"}`))
	w := httptest.NewRecorder()
	AddHoliday(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/analyze?start_date=2023-01-01&end_date=2023-01-10", nil)
	w = httptest.NewRecorder()
	HandleAnalyze(w, req)
	var resp AnalyzeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.PublicHolidays["2023-01-04"] != "Company Day" {
		t.Errorf("Expected custom holiday, got %v", resp.PublicHolidays)
	}
	if resp.WorkingDays != 5 {
		t.Errorf("Expected 5 working days with the custom holiday, got %d", resp.WorkingDays)
	}

	// deleting the observed Epiphany turns Jan 9 into a working day
	req = httptest.NewRequest("POST", "/api/holidays/delete",
		strings.NewReader(`{"date": "2023-01-09"}`))
	w = httptest.NewRecorder()
	DeleteHoliday(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/analyze?start_date=2023-01-01&end_date=2023-01-10", nil)
	w = httptest.NewRecorder()
	HandleAnalyze(w, req)
	resp = AnalyzeResponse{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if _, ok := resp.PublicHolidays["2023-01-09"]; ok {
		t.Error("Expected 2023-01-09 to be removed")
	}
	if resp.WorkingDays != 6 {
		t.Errorf("Expected 6 working days, got %d", resp.WorkingDays)
	}
}

func TestEditEndpointsValidation(t *testing.T) {
	EditMode = true
	defer func() { EditMode = false }()

	req := httptest.NewRequest("POST", "/api/holidays/add",
		strings.NewReader(`{"date": "nope", "name": "X"}`))
	w := httptest.NewRecorder()
	AddHoliday(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a bad date, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/api/holidays/add",
		strings.NewReader(`{"date": "2023-01-04", "name": ""}`))
	w = httptest.NewRecorder()
	AddHoliday(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for an empty name, got %d", w.Code)
	}
}

func TestEditEndpointsRequireEditMode(t *testing.T) {
	EditMode = false

	req := httptest.NewRequest("POST", "/api/holidays/add",
		strings.NewReader(`{"date": "2023-01-04", "name": "X"}`))
	w := httptest.NewRecorder()
	AddHoliday(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
}

func TestGetConfig(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/config", nil)
	w := httptest.NewRecorder()

	GetConfig(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var config map[string]any
	if err := json.NewDecoder(w.Body).Decode(&config); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	countries, ok := config["countries"].([]any)
	if !ok || len(countries) == 0 {
		t.Errorf("Expected registered countries, got %v", config["countries"])
	}
}
