package distance

import (
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"math"
)

// HaversineMiles returns the great-circle distance between patient and clinic
// in miles, rounded to one decimal place.
func HaversineMiles(patient, clinic models.Coordinate) float64 {
	patientLatRad := toRadians(patient.Lat)
	clinicLatRad := toRadians(clinic.Lat)
	deltaLat := toRadians(clinic.Lat - patient.Lat)
	deltaLng := toRadians(clinic.Lng - patient.Lng)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(patientLatRad)*math.Cos(clinicLatRad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// Rounding can push a just past 1 for antipodal points.
	a = math.Max(0, math.Min(1, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(constvars.EarthRadiusInMiles*c*10) / 10
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
