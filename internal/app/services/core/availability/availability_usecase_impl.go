package availability

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/dto/responses"
	"doctor-finder-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	DoctorRepository       contracts.DoctorRepository
	AvailabilityRepository contracts.AvailabilityRepository
	Clock                  contracts.Clock
	Log                    *zap.Logger
}

func NewAvailabilityUsecase(
	doctorRepository contracts.DoctorRepository,
	availabilityRepository contracts.AvailabilityRepository,
	clock contracts.Clock,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		DoctorRepository:       doctorRepository,
		AvailabilityRepository: availabilityRepository,
		Clock:                  clock,
		Log:                    logger,
	}
}

func (uc *availabilityUsecase) NormalizedCalendar(ctx context.Context, doctorID string) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.NormalizedCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	calendar, found, err := uc.findCalendar(ctx, requestID, doctorID)
	if err != nil {
		return nil, err
	}

	response := &responses.Availability{
		DoctorID:    doctorID,
		HasCalendar: found,
		Calendar:    map[string][]string{},
	}
	if !found {
		uc.Log.Info("availabilityUsecase.NormalizedCalendar doctor has no calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return response, nil
	}

	normalized, err := Normalize(calendar, uc.Clock.Now())
	if err != nil {
		uc.Log.Error("availabilityUsecase.NormalizedCalendar error normalizing calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	response.Calendar = normalized

	uc.Log.Info("availabilityUsecase.NormalizedCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingCalendarDatesKey, len(normalized)),
	)
	return response, nil
}

func (uc *availabilityUsecase) NextAvailability(ctx context.Context, doctorID string) (*responses.NextAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.NextAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	calendar, found, err := uc.findCalendar(ctx, requestID, doctorID)
	if err != nil {
		return nil, err
	}

	response := &responses.NextAvailability{
		DoctorID:    doctorID,
		HasCalendar: found,
		Label:       constvars.NoAvailabilityLabel,
	}
	if !found {
		return response, nil
	}

	now := uc.Clock.Now()
	normalized, err := Normalize(calendar, now)
	if err != nil {
		uc.Log.Error("availabilityUsecase.NextAvailability error normalizing calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	slot, err := ResolveNextSlot(normalized, now)
	if err != nil {
		uc.Log.Error("availabilityUsecase.NextAvailability error resolving next slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	response.Slot = SlotIntoResponse(slot)
	response.Label = FormatNextAvailable(slot)

	uc.Log.Info("availabilityUsecase.NextAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return response, nil
}

// findCalendar loads the doctor's calendar after checking the doctor exists.
func (uc *availabilityUsecase) findCalendar(ctx context.Context, requestID, doctorID string) (models.AvailabilityCalendar, bool, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.findCalendar error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, false, err
	}
	if doctor == nil {
		return nil, false, exceptions.ErrDoctorNotFound(doctorID)
	}

	calendar, found, err := uc.AvailabilityRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.findCalendar error fetching availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, false, err
	}
	return calendar, found, nil
}

func SlotIntoResponse(slot *models.Slot) *responses.Slot {
	if slot == nil {
		return nil
	}
	return &responses.Slot{Date: slot.Date, Time: slot.Time}
}
