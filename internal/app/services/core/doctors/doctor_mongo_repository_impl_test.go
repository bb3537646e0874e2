package doctors

import (
	"doctor-finder-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildDoctorFilter(t *testing.T) {
	t.Run("Role Only", func(t *testing.T) {
		assert.Equal(t, bson.M{"role": "doctor"}, buildDoctorFilter(models.DoctorFilters{}))
	})

	t.Run("All Filters", func(t *testing.T) {
		got := buildDoctorFilter(models.DoctorFilters{Insurance: "Aetna", City: "Dallas", Specialty: "Cardiology"})

		assert.Equal(t, bson.M{
			"role":               "doctor",
			"acceptedInsurances": "Aetna",
			"city":               "Dallas",
			"specialty":          "Cardiology",
		}, got)
	})
}
