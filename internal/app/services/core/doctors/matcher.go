package doctors

import (
	"doctor-finder-service/internal/app/models"
	"sort"
	"strings"
)

// Match narrows records by the structured filters and then by the free text
// query. With no text and no filters it returns records itself. Order is kept.
func Match(records []models.Doctor, query models.DoctorSearchQuery) []models.Doctor {
	base := ApplyFilters(records, query.Filters)

	needle := strings.ToLower(query.Text)
	if needle == "" {
		return base
	}

	matched := make([]models.Doctor, 0, len(base))
	for _, doctor := range base {
		if matchesText(doctor, needle) {
			matched = append(matched, doctor)
		}
	}
	return matched
}

// ApplyFilters keeps the records that satisfy every set filter.
func ApplyFilters(records []models.Doctor, filters models.DoctorFilters) []models.Doctor {
	if filters.IsEmpty() {
		return records
	}

	filtered := make([]models.Doctor, 0, len(records))
	for _, doctor := range records {
		if matchesFilters(doctor, filters) {
			filtered = append(filtered, doctor)
		}
	}
	return filtered
}

// DistinctFilterValues collects the sorted, deduplicated values each filter
// menu can offer for records. Empty values are skipped.
func DistinctFilterValues(records []models.Doctor) models.FilterOptions {
	insurances := make(map[string]struct{})
	cities := make(map[string]struct{})
	specialties := make(map[string]struct{})

	for _, doctor := range records {
		for _, insurance := range doctor.AcceptedInsurances {
			addValue(insurances, insurance)
		}
		addValue(cities, doctor.City)
		addValue(specialties, doctor.Specialty)
	}

	return models.FilterOptions{
		Insurances:  sortedValues(insurances),
		Cities:      sortedValues(cities),
		Specialties: sortedValues(specialties),
	}
}

func matchesFilters(doctor models.Doctor, filters models.DoctorFilters) bool {
	if filters.City != "" && doctor.City != filters.City {
		return false
	}
	if filters.Specialty != "" && doctor.Specialty != filters.Specialty {
		return false
	}
	if filters.Insurance != "" && !containsExact(doctor.AcceptedInsurances, filters.Insurance) {
		return false
	}
	return true
}

// matchesText reports whether any searchable field contains needle, which must
// already be lowercase.
func matchesText(doctor models.Doctor, needle string) bool {
	if containsFold(doctor.FirstName, needle) || containsFold(doctor.LastName, needle) {
		return true
	}
	for _, insurance := range doctor.AcceptedInsurances {
		if containsFold(insurance, needle) {
			return true
		}
	}
	for _, field := range []string{doctor.City, doctor.ClinicName, doctor.Degree, doctor.Specialty} {
		if containsFold(field, needle) {
			return true
		}
	}
	for _, language := range doctor.SpokenLanguages {
		if containsFold(language, needle) {
			return true
		}
	}
	for _, field := range []string{doctor.State, doctor.StreetAddress, doctor.ZipCode} {
		if containsFold(field, needle) {
			return true
		}
	}
	return false
}

func containsFold(field, needle string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), needle)
}

func containsExact(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func addValue(set map[string]struct{}, value string) {
	if value != "" {
		set[value] = struct{}{}
	}
}

func sortedValues(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
