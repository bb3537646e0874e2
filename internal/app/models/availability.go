package models

// AvailabilityCalendar maps an ISO date (YYYY-MM-DD) to the clinic-local
// HH:MM times still open on that date. Times within a date are not ordered.
type AvailabilityCalendar map[string][]string

// Slot is a single bookable date and time of day.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
