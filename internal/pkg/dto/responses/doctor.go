package responses

type Doctor struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	FirstName          string   `json:"firstName,omitempty"`
	LastName           string   `json:"lastName,omitempty"`
	ClinicName         string   `json:"clinicName,omitempty"`
	Degree             string   `json:"degree,omitempty"`
	Specialty          string   `json:"specialty,omitempty"`
	Location           string   `json:"location,omitempty"`
	StreetAddress      string   `json:"streetAddress,omitempty"`
	City               string   `json:"city,omitempty"`
	State              string   `json:"state,omitempty"`
	ZipCode            string   `json:"zipCode,omitempty"`
	AcceptedInsurances []string `json:"acceptedInsurances"`
	SpokenLanguages    []string `json:"spokenLanguages"`
}

type FilterOptions struct {
	Insurances  []string `json:"insurances"`
	Cities      []string `json:"cities"`
	Specialties []string `json:"specialties"`
}

type DoctorSearchResult struct {
	Doctor        Doctor   `json:"doctor"`
	DistanceMiles *float64 `json:"distanceMiles"`
}

type SearchDoctors struct {
	Doctors       []DoctorSearchResult `json:"doctors"`
	FilterOptions FilterOptions        `json:"filterOptions"`
}

type DoctorCard struct {
	Doctor              Doctor   `json:"doctor"`
	DistanceMiles       *float64 `json:"distanceMiles"`
	NextAvailable       *Slot    `json:"nextAvailable"`
	NextAvailableLabel  string   `json:"nextAvailableLabel"`
	HasCalendar         bool     `json:"hasCalendar"`
	InsurancesPreview   []string `json:"insurancesPreview"`
	MoreInsurancesCount int      `json:"moreInsurancesCount"`
	LanguagesPreview    []string `json:"languagesPreview"`
	MoreLanguagesCount  int      `json:"moreLanguagesCount"`
}
