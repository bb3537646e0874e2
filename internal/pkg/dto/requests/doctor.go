package requests

type SearchDoctors struct {
	Query     string   `json:"query" validate:"max=100"`
	Insurance string   `json:"insurance" validate:"max=100"`
	City      string   `json:"city" validate:"max=100"`
	Specialty string   `json:"specialty" validate:"max=100"`
	Lat       *float64 `json:"lat" validate:"required_with=Lng,omitempty,latitude"`
	Lng       *float64 `json:"lng" validate:"required_with=Lat,omitempty,longitude"`
}

type FilterOptions struct {
	Insurance string `json:"insurance" validate:"max=100"`
	City      string `json:"city" validate:"max=100"`
	Specialty string `json:"specialty" validate:"max=100"`
}

type DoctorCard struct {
	DoctorID string   `json:"doctor_id" validate:"required"`
	Lat      *float64 `json:"lat" validate:"required_with=Lng,omitempty,latitude"`
	Lng      *float64 `json:"lng" validate:"required_with=Lat,omitempty,longitude"`
}
