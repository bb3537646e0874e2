package constvars

const (
	SearchDoctorsSuccessMessage       = "doctors retrieved successfully"
	GetFilterOptionsSuccessMessage    = "filter options retrieved successfully"
	GetDoctorCardSuccessMessage       = "doctor card retrieved successfully"
	GetAvailabilitySuccessMessage     = "availability retrieved successfully"
	GetNextAvailabilitySuccessMessage = "next availability retrieved successfully"
	GetDistanceSuccessMessage         = "distance calculated successfully"
)
