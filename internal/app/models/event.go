package models

// DirectoryEvent announces a change to the doctor directory or a doctor's calendar.
type DirectoryEvent struct {
	Type     string `json:"type"`
	DoctorID string `json:"doctorId,omitempty"`
}

// DirectorySnapshot is the seed payload: doctor records plus calendars keyed by doctor id.
type DirectorySnapshot struct {
	Doctors      []Doctor                        `json:"doctors" validate:"dive"`
	Availability map[string]AvailabilityCalendar `json:"availability"`
}

// SeedResult summarizes one snapshot import.
type SeedResult struct {
	DoctorsWritten   int `json:"doctorsWritten"`
	CalendarsWritten int `json:"calendarsWritten"`
	EventsPublished  int `json:"eventsPublished"`
}
