package app

// Event represents a single public holiday in API responses and exports
type Event struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// AnalyzeResponse summarizes a date range
type AnalyzeResponse struct {
	Days           int               `json:"days"`
	WorkingDays    int               `json:"working_days"`
	WeekendDays    int               `json:"weekend_days"`
	PublicHolidays map[string]string `json:"public_holidays"`
}

// HolidaysResponse lists a country's holidays for one year
type HolidaysResponse struct {
	Country  string  `json:"country"`
	Year     int     `json:"year"`
	Observed bool    `json:"observed"`
	Holidays []Event `json:"holidays"`
}
