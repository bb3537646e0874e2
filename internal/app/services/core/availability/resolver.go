package availability

import (
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"time"
)

// ResolveNextSlot returns the earliest bookable slot of calendar, or nil when
// there is none. Today only counts before the workday cutoff, and only times
// strictly after now. Within a date the first qualifying time in list order wins.
// Every entry is validated first, so a malformed calendar never yields a slot.
func ResolveNextSlot(calendar models.AvailabilityCalendar, now time.Time) (*models.Slot, error) {
	if err := Validate(calendar); err != nil {
		return nil, err
	}
	dateKeys := sortedDateKeys(calendar)

	today := now.Format(constvars.AvailabilityDateLayout)
	nowMinute := minuteOfDay(now)
	pastCutoff := now.Hour() >= constvars.WorkdayCutoffHour

	for _, dateKey := range dateKeys {
		times := calendar[dateKey]
		switch {
		case dateKey < today:
			continue
		case dateKey == today:
			if pastCutoff {
				continue
			}
			minutes, err := parseTimes(dateKey, times)
			if err != nil {
				return nil, err
			}
			for i, minute := range minutes {
				if minute > nowMinute {
					return &models.Slot{Date: dateKey, Time: times[i]}, nil
				}
			}
		default:
			if len(times) > 0 {
				return &models.Slot{Date: dateKey, Time: times[0]}, nil
			}
		}
	}
	return nil, nil
}
