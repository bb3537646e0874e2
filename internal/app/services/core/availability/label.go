package availability

import (
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
)

// FormatNextAvailable renders slot's date as "Tue, Oct 15".
func FormatNextAvailable(slot *models.Slot) string {
	if slot == nil {
		return constvars.NoAvailabilityLabel
	}
	date, err := parseDate(slot.Date)
	if err != nil {
		return slot.Date
	}
	return date.Format(constvars.NextAvailableLabelLayout)
}
