package doctors

import (
	"doctor-finder-service/internal/app/models"
	"sync/atomic"
)

func sampleDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:                 "d1",
			Role:               "doctor",
			FirstName:          "Maria",
			LastName:           "Gonzalez",
			ClinicName:         "Uptown Heart Clinic",
			Degree:             "MD",
			Specialty:          "Cardiology",
			StreetAddress:      "100 Main St",
			City:               "Dallas",
			State:              "TX",
			ZipCode:            "75201",
			AcceptedInsurances: []string{"Aetna", "Cigna", "Humana", "Medicare"},
			SpokenLanguages:    []string{"English", "Spanish"},
			Coordinates:        &models.Coordinate{Lat: 32.7767, Lng: -96.7970},
		},
		{
			ID:                 "d2",
			Role:               "doctor",
			FirstName:          "James",
			LastName:           "Lee",
			ClinicName:         "North Texas Family Care",
			Degree:             "DO",
			Specialty:          "Family Medicine",
			City:               "Denton",
			State:              "TX",
			ZipCode:            "76201",
			AcceptedInsurances: []string{"Cigna"},
			SpokenLanguages:    []string{"English", "Korean"},
			Coordinates:        &models.Coordinate{Lat: 33.2148, Lng: -97.1331},
		},
		{
			ID:                 "d3",
			Role:               "doctor",
			FirstName:          "Priya",
			LastName:           "Patel",
			Specialty:          "Cardiology",
			City:               "Houston",
			AcceptedInsurances: []string{"Aetna"},
			SpokenLanguages:    []string{"Hindi"},
		},
	}
}

func ids(doctors []models.Doctor) []string {
	result := make([]string, len(doctors))
	for i, doctor := range doctors {
		result[i] = doctor.ID
	}
	return result
}

func atomicLoad(counter *int32) int32 {
	return atomic.LoadInt32(counter)
}
