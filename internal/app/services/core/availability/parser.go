package availability

import (
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"
	"sort"
	"time"
)

func parseDate(dateKey string) (time.Time, error) {
	date, err := time.Parse(constvars.AvailabilityDateLayout, dateKey)
	if err != nil {
		return time.Time{}, exceptions.ErrMalformedAvailabilityDate(err, dateKey)
	}
	return date, nil
}

// parseTimes returns each entry of times as minutes since midnight.
func parseTimes(dateKey string, times []string) ([]int, error) {
	minutes := make([]int, len(times))
	for i, value := range times {
		parsed, err := time.Parse(constvars.AvailabilityTimeLayout, value)
		if err != nil {
			return nil, exceptions.ErrMalformedAvailabilityTime(err, dateKey, value)
		}
		minutes[i] = parsed.Hour()*60 + parsed.Minute()
	}
	return minutes, nil
}

func sortedDateKeys(calendar models.AvailabilityCalendar) []string {
	keys := make([]string, 0, len(calendar))
	for key := range calendar {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Validate checks every date key and time entry of calendar without dropping anything.
func Validate(calendar models.AvailabilityCalendar) error {
	for _, dateKey := range sortedDateKeys(calendar) {
		if _, err := parseDate(dateKey); err != nil {
			return err
		}
		if _, err := parseTimes(dateKey, calendar[dateKey]); err != nil {
			return err
		}
	}
	return nil
}
