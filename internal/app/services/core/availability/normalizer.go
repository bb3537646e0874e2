package availability

import (
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"slices"
	"time"
)

// Normalize drops the dates and times of calendar that are already in the past
// relative to now. Today's times are kept from now's minute onward. The calendar
// day is read in now's location, so callers pass now in the clinic timezone.
// The result shares no slices with calendar.
func Normalize(calendar models.AvailabilityCalendar, now time.Time) (models.AvailabilityCalendar, error) {
	today := now.Format(constvars.AvailabilityDateLayout)
	nowMinute := minuteOfDay(now)

	normalized := make(models.AvailabilityCalendar, len(calendar))
	for _, dateKey := range sortedDateKeys(calendar) {
		if _, err := parseDate(dateKey); err != nil {
			return nil, err
		}

		times := calendar[dateKey]
		minutes, err := parseTimes(dateKey, times)
		if err != nil {
			return nil, err
		}

		switch {
		case dateKey < today:
			continue
		case dateKey > today:
			normalized[dateKey] = slices.Clone(times)
		default:
			remaining := make([]string, 0, len(times))
			for i, minute := range minutes {
				if minute >= nowMinute {
					remaining = append(remaining, times[i])
				}
			}
			if len(remaining) > 0 {
				normalized[dateKey] = remaining
			}
		}
	}
	return normalized, nil
}
