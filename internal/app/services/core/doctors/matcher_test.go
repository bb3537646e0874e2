package doctors

import (
	"doctor-finder-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	records := sampleDoctors()

	tests := []struct {
		name  string
		query models.DoctorSearchQuery
		want  []string
	}{
		{name: "Name Is Case Insensitive", query: models.DoctorSearchQuery{Text: "MARIA"}, want: []string{"d1"}},
		{name: "Insurance Entry", query: models.DoctorSearchQuery{Text: "cig"}, want: []string{"d1", "d2"}},
		{name: "Spoken Language", query: models.DoctorSearchQuery{Text: "korean"}, want: []string{"d2"}},
		{name: "Clinic Name", query: models.DoctorSearchQuery{Text: "heart"}, want: []string{"d1"}},
		{name: "Degree", query: models.DoctorSearchQuery{Text: "do"}, want: []string{"d2"}},
		{name: "Zip Code", query: models.DoctorSearchQuery{Text: "762"}, want: []string{"d2"}},
		{name: "Street Address", query: models.DoctorSearchQuery{Text: "main st"}, want: []string{"d1"}},
		{name: "State", query: models.DoctorSearchQuery{Text: "tx"}, want: []string{"d1", "d2"}},
		{name: "No Match", query: models.DoctorSearchQuery{Text: "dermatology"}, want: []string{}},
		{name: "City Filter", query: models.DoctorSearchQuery{Filters: models.DoctorFilters{City: "Dallas"}}, want: []string{"d1"}},
		{name: "City Filter Is Exact", query: models.DoctorSearchQuery{Filters: models.DoctorFilters{City: "dallas"}}, want: []string{}},
		{name: "Insurance Filter Is Membership", query: models.DoctorSearchQuery{Filters: models.DoctorFilters{Insurance: "Aetna"}}, want: []string{"d1", "d3"}},
		{
			name:  "Filters Are Anded",
			query: models.DoctorSearchQuery{Filters: models.DoctorFilters{Insurance: "Aetna", Specialty: "Cardiology", City: "Houston"}},
			want:  []string{"d3"},
		},
		{
			name:  "Text Within Filters",
			query: models.DoctorSearchQuery{Text: "english", Filters: models.DoctorFilters{Specialty: "Cardiology"}},
			want:  []string{"d1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Match(records, tt.query)))
		})
	}
}

func TestMatchEmptyQueryIsIdentity(t *testing.T) {
	records := sampleDoctors()

	got := Match(records, models.DoctorSearchQuery{})

	assert.Equal(t, records, got)
	assert.Same(t, &records[0], &got[0])
}

func TestMatchPreservesOrderAndInput(t *testing.T) {
	records := sampleDoctors()
	before := sampleDoctors()

	got := Match(records, models.DoctorSearchQuery{Text: "a"})

	assert.Equal(t, []string{"d1", "d2", "d3"}, ids(got))
	assert.Equal(t, before, records)
}

func TestMatchResultIsSubsetOfBaseSet(t *testing.T) {
	records := sampleDoctors()
	filters := models.DoctorFilters{Specialty: "Cardiology"}
	base := ApplyFilters(records, filters)

	for _, text := range []string{"", "a", "aetna", "zzz"} {
		got := Match(records, models.DoctorSearchQuery{Text: text, Filters: filters})
		for _, doctor := range got {
			assert.Contains(t, ids(base), doctor.ID)
		}
	}
}

func TestMatchSkipsEmptyFields(t *testing.T) {
	records := []models.Doctor{{ID: "bare"}, {ID: "named", FirstName: "Ann"}}

	assert.Equal(t, []string{"named"}, ids(Match(records, models.DoctorSearchQuery{Text: "ann"})))
}

func TestDistinctFilterValues(t *testing.T) {
	t.Run("Sorted And Deduplicated", func(t *testing.T) {
		got := DistinctFilterValues(sampleDoctors())

		assert.Equal(t, []string{"Aetna", "Cigna", "Humana", "Medicare"}, got.Insurances)
		assert.Equal(t, []string{"Dallas", "Denton", "Houston"}, got.Cities)
		assert.Equal(t, []string{"Cardiology", "Family Medicine"}, got.Specialties)
	})

	t.Run("Skips Empty Values", func(t *testing.T) {
		got := DistinctFilterValues([]models.Doctor{{ID: "x", AcceptedInsurances: []string{""}}})

		assert.Empty(t, got.Insurances)
		assert.Empty(t, got.Cities)
		assert.NotNil(t, got.Specialties)
	})

	t.Run("Independent Of Text Query", func(t *testing.T) {
		filters := models.DoctorFilters{Insurance: "Cigna"}
		base := ApplyFilters(sampleDoctors(), filters)

		options := DistinctFilterValues(base)

		assert.Equal(t, []string{"Dallas", "Denton"}, options.Cities)
	})
}
