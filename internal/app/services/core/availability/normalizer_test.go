package availability

import (
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.October, 15, 10, 30, 0, 0, time.UTC)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		calendar models.AvailabilityCalendar
		now      time.Time
		want     models.AvailabilityCalendar
	}{
		{
			name:     "Drops Past Dates",
			calendar: models.AvailabilityCalendar{"2024-10-14": {"09:00"}, "2024-10-16": {"09:00"}},
			now:      testNow,
			want:     models.AvailabilityCalendar{"2024-10-16": {"09:00"}},
		},
		{
			name:     "Keeps Today From Current Minute",
			calendar: models.AvailabilityCalendar{"2024-10-15": {"09:00", "10:30", "11:00", "10:00"}},
			now:      testNow,
			want:     models.AvailabilityCalendar{"2024-10-15": {"10:30", "11:00"}},
		},
		{
			name:     "Ignores Seconds Of Now",
			calendar: models.AvailabilityCalendar{"2024-10-15": {"10:30"}},
			now:      testNow.Add(59 * time.Second),
			want:     models.AvailabilityCalendar{"2024-10-15": {"10:30"}},
		},
		{
			name:     "Drops Today When Nothing Remains",
			calendar: models.AvailabilityCalendar{"2024-10-15": {"08:00", "09:15"}, "2024-10-17": {"14:00"}},
			now:      testNow,
			want:     models.AvailabilityCalendar{"2024-10-17": {"14:00"}},
		},
		{
			name:     "Copies Future Dates In Original Order",
			calendar: models.AvailabilityCalendar{"2024-10-20": {"15:00", "08:00", "9:30"}},
			now:      testNow,
			want:     models.AvailabilityCalendar{"2024-10-20": {"15:00", "08:00", "9:30"}},
		},
		{
			name:     "Empty Calendar",
			calendar: models.AvailabilityCalendar{},
			now:      testNow,
			want:     models.AvailabilityCalendar{},
		},
		{
			name:     "Nil Calendar",
			calendar: nil,
			now:      testNow,
			want:     models.AvailabilityCalendar{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.calendar, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	calendar := models.AvailabilityCalendar{
		"2024-10-14": {"09:00"},
		"2024-10-15": {"10:00", "12:00", "10:45"},
		"2024-10-16": {"08:00"},
	}

	once, err := Normalize(calendar, testNow)
	require.NoError(t, err)
	twice, err := Normalize(once, testNow)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotMutateOrAliasInput(t *testing.T) {
	futureTimes := []string{"09:00", "10:00"}
	calendar := models.AvailabilityCalendar{
		"2024-10-14": {"09:00"},
		"2024-10-15": {"08:00", "11:00"},
		"2024-10-16": futureTimes,
	}

	normalized, err := Normalize(calendar, testNow)
	require.NoError(t, err)

	assert.Len(t, calendar, 3)
	assert.Equal(t, []string{"08:00", "11:00"}, calendar["2024-10-15"])

	normalized["2024-10-16"][0] = "23:59"
	assert.Equal(t, "09:00", futureTimes[0])
}

func TestNormalizeRejectsMalformedData(t *testing.T) {
	tests := []struct {
		name     string
		calendar models.AvailabilityCalendar
		contains string
	}{
		{name: "Unpadded Date", calendar: models.AvailabilityCalendar{"2024-1-05": {"09:00"}}, contains: "2024-1-05"},
		{name: "Impossible Date", calendar: models.AvailabilityCalendar{"2024-02-30": {"09:00"}}, contains: "2024-02-30"},
		{name: "Not A Date", calendar: models.AvailabilityCalendar{"tomorrow": {"09:00"}}, contains: "tomorrow"},
		{name: "Hour Out Of Range", calendar: models.AvailabilityCalendar{"2024-10-16": {"25:00"}}, contains: "25:00"},
		{name: "Twelve Hour Clock", calendar: models.AvailabilityCalendar{"2024-10-16": {"9:00 AM"}}, contains: "9:00 AM"},
		{name: "Malformed Time On Past Date", calendar: models.AvailabilityCalendar{"2024-10-01": {"noon"}}, contains: "noon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.calendar, testNow)
			require.Error(t, err)
			assert.Nil(t, got)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, 400, customErr.StatusCode)
			assert.Contains(t, customErr.DevMessage, tt.contains)
		})
	}
}

func TestNormalizeAcceptsSingleDigitHour(t *testing.T) {
	got, err := Normalize(models.AvailabilityCalendar{"2024-10-15": {"9:30", "11:05"}}, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityCalendar{"2024-10-15": {"11:05"}}, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(models.AvailabilityCalendar{"2020-01-01": {"09:00"}}))
	assert.Error(t, Validate(models.AvailabilityCalendar{"2020-01-01": {"9"}}))
}
