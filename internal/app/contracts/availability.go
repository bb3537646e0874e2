package contracts

import (
	"context"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	NormalizedCalendar(ctx context.Context, doctorID string) (*responses.Availability, error)
	NextAvailability(ctx context.Context, doctorID string) (*responses.NextAvailability, error)
}

type AvailabilityRepository interface {
	// FindByDoctorID reports found=false when the doctor has no availability document.
	FindByDoctorID(ctx context.Context, doctorID string) (calendar models.AvailabilityCalendar, found bool, err error)
	Upsert(ctx context.Context, doctorID string, calendar models.AvailabilityCalendar) error
}
