package responses

type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Availability struct {
	DoctorID    string              `json:"doctorId"`
	HasCalendar bool                `json:"hasCalendar"`
	Calendar    map[string][]string `json:"calendar"`
}

type NextAvailability struct {
	DoctorID    string `json:"doctorId"`
	HasCalendar bool   `json:"hasCalendar"`
	Slot        *Slot  `json:"slot"`
	Label       string `json:"label"`
}
