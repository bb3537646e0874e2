package requests

type Distance struct {
	PatientLat *float64 `json:"patient_lat" validate:"required_with=PatientLng,omitempty,latitude"`
	PatientLng *float64 `json:"patient_lng" validate:"required_with=PatientLat,omitempty,longitude"`
	ClinicLat  *float64 `json:"clinic_lat" validate:"required_with=ClinicLng,omitempty,latitude"`
	ClinicLng  *float64 `json:"clinic_lng" validate:"required_with=ClinicLat,omitempty,longitude"`
}
