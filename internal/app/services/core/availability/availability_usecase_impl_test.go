package availability

import (
	"context"
	"doctor-finder-service/internal/app/mocks"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return testNow }

func newTestAvailabilityUsecase(calendars map[string]models.AvailabilityCalendar) (*availabilityUsecase, *mocks.MockAvailabilityRepository) {
	doctorRepo := &mocks.MockDoctorRepository{
		Doctors: []models.Doctor{{ID: "d1", FirstName: "Ana"}, {ID: "d2", FirstName: "Ben"}},
	}
	availabilityRepo := &mocks.MockAvailabilityRepository{Calendars: calendars}
	uc := NewAvailabilityUsecase(doctorRepo, availabilityRepo, fixedClock{}, zap.NewNop()).(*availabilityUsecase)
	return uc, availabilityRepo
}

func TestAvailabilityUsecase_NormalizedCalendar(t *testing.T) {
	t.Run("Normalizes Stored Calendar", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(map[string]models.AvailabilityCalendar{
			"d1": {"2024-10-14": {"09:00"}, "2024-10-15": {"10:00", "11:00"}},
		})

		got, err := uc.NormalizedCalendar(context.Background(), "d1")
		require.NoError(t, err)
		assert.True(t, got.HasCalendar)
		assert.Equal(t, map[string][]string{"2024-10-15": {"11:00"}}, got.Calendar)
	})

	t.Run("Missing Calendar Is Not An Error", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(nil)

		got, err := uc.NormalizedCalendar(context.Background(), "d2")
		require.NoError(t, err)
		assert.False(t, got.HasCalendar)
		assert.Empty(t, got.Calendar)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		uc, availabilityRepo := newTestAvailabilityUsecase(nil)

		_, err := uc.NormalizedCalendar(context.Background(), "missing")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Equal(t, int32(0), availabilityRepo.FindByDoctorIDCallCount)
	})

	t.Run("Malformed Calendar", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(map[string]models.AvailabilityCalendar{
			"d1": {"2024-13-01": {"10:00"}},
		})

		_, err := uc.NormalizedCalendar(context.Background(), "d1")
		assert.Error(t, err)
	})

	t.Run("Repository Failure Surfaces", func(t *testing.T) {
		uc, availabilityRepo := newTestAvailabilityUsecase(nil)
		availabilityRepo.FindByDoctorIDFunc = func(ctx context.Context, doctorID string) (models.AvailabilityCalendar, bool, error) {
			return nil, false, exceptions.ErrMongoDBFindDocument(errors.New("connection reset"))
		}

		_, err := uc.NormalizedCalendar(context.Background(), "d1")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 500, customErr.StatusCode)
	})
}

func TestAvailabilityUsecase_NextAvailability(t *testing.T) {
	t.Run("Resolves Slot And Label", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(map[string]models.AvailabilityCalendar{
			"d1": {"2024-10-15": {"09:00"}, "2024-10-16": {"13:00", "08:30"}},
		})

		got, err := uc.NextAvailability(context.Background(), "d1")
		require.NoError(t, err)
		assert.True(t, got.HasCalendar)
		require.NotNil(t, got.Slot)
		assert.Equal(t, "2024-10-16", got.Slot.Date)
		assert.Equal(t, "13:00", got.Slot.Time)
		assert.Equal(t, "Wed, Oct 16", got.Label)
	})

	t.Run("Calendar Without Open Slots", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(map[string]models.AvailabilityCalendar{
			"d1": {"2024-10-01": {"09:00"}},
		})

		got, err := uc.NextAvailability(context.Background(), "d1")
		require.NoError(t, err)
		assert.True(t, got.HasCalendar)
		assert.Nil(t, got.Slot)
		assert.Equal(t, "No availability", got.Label)
	})

	t.Run("Malformed Future Time Is Rejected", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(map[string]models.AvailabilityCalendar{
			"d1": {"2024-10-16": {"not-a-time"}},
		})

		got, err := uc.NextAvailability(context.Background(), "d1")
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("Agrees With Normalized Calendar", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(map[string]models.AvailabilityCalendar{
			"d1": {"2024-10-14": {"09:00"}, "2024-10-15": {"10:00", "12:00"}, "2024-10-17": {"08:00"}},
		})

		calendar, err := uc.NormalizedCalendar(context.Background(), "d1")
		require.NoError(t, err)
		next, err := uc.NextAvailability(context.Background(), "d1")
		require.NoError(t, err)
		require.NotNil(t, next.Slot)
		assert.Equal(t, calendar.Calendar[next.Slot.Date][0], next.Slot.Time)
	})

	t.Run("No Calendar", func(t *testing.T) {
		uc, _ := newTestAvailabilityUsecase(nil)

		got, err := uc.NextAvailability(context.Background(), "d2")
		require.NoError(t, err)
		assert.False(t, got.HasCalendar)
		assert.Nil(t, got.Slot)
		assert.Equal(t, "No availability", got.Label)
	})
}
