package directory

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/app/services/core/availability"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"
	"doctor-finder-service/internal/pkg/utils"
	"sort"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

type seeder struct {
	Storage                contracts.Storage
	DoctorRepository       contracts.DoctorRepository
	AvailabilityRepository contracts.AvailabilityRepository
	Publisher              contracts.DirectoryEventPublisher
	Log                    *logrus.Logger
}

func NewSeeder(
	storage contracts.Storage,
	doctorRepository contracts.DoctorRepository,
	availabilityRepository contracts.AvailabilityRepository,
	publisher contracts.DirectoryEventPublisher,
	logger *logrus.Logger,
) contracts.DirectorySeeder {
	return &seeder{
		Storage:                storage,
		DoctorRepository:       doctorRepository,
		AvailabilityRepository: availabilityRepository,
		Publisher:              publisher,
		Log:                    logger,
	}
}

// SeedFromSnapshot validates the whole snapshot before the first write, so a
// malformed calendar leaves the database untouched.
func (s *seeder) SeedFromSnapshot(ctx context.Context, bucketName, objectName string) (*models.SeedResult, error) {
	log := s.Log.WithFields(logrus.Fields{
		constvars.LoggingBucketNameKey: bucketName,
		constvars.LoggingObjectKey:     objectName,
	})
	log.Info("seeder.SeedFromSnapshot called")

	raw, err := s.Storage.GetObject(ctx, bucketName, objectName)
	if err != nil {
		log.WithError(err).Error("seeder.SeedFromSnapshot error reading snapshot")
		return nil, err
	}

	snapshot, err := decodeSnapshot(raw)
	if err != nil {
		log.WithError(err).Error("seeder.SeedFromSnapshot snapshot rejected")
		return nil, err
	}

	result := &models.SeedResult{}

	written, err := s.DoctorRepository.UpsertMany(ctx, snapshot.Doctors)
	if err != nil {
		log.WithError(err).Error("seeder.SeedFromSnapshot error upserting doctors")
		return nil, err
	}
	result.DoctorsWritten = written

	doctorIDs := make([]string, 0, len(snapshot.Availability))
	for doctorID := range snapshot.Availability {
		doctorIDs = append(doctorIDs, doctorID)
	}
	sort.Strings(doctorIDs)

	for _, doctorID := range doctorIDs {
		err := s.AvailabilityRepository.Upsert(ctx, doctorID, snapshot.Availability[doctorID])
		if err != nil {
			log.WithError(err).WithField(constvars.LoggingDoctorIDKey, doctorID).Error("seeder.SeedFromSnapshot error upserting calendar")
			return nil, err
		}
		result.CalendarsWritten++

		err = s.publish(ctx, models.DirectoryEvent{Type: constvars.DirectoryEventAvailabilityChanged, DoctorID: doctorID})
		if err != nil {
			return nil, err
		}
		result.EventsPublished++
	}

	if len(snapshot.Doctors) > 0 {
		err = s.publish(ctx, models.DirectoryEvent{Type: constvars.DirectoryEventDoctorsChanged})
		if err != nil {
			return nil, err
		}
		result.EventsPublished++
	}

	log.WithFields(logrus.Fields{
		"doctors_written":   result.DoctorsWritten,
		"calendars_written": result.CalendarsWritten,
		"events_published":  result.EventsPublished,
	}).Info("seeder.SeedFromSnapshot succeeded")
	return result, nil
}

func (s *seeder) publish(ctx context.Context, event models.DirectoryEvent) error {
	err := s.Publisher.Publish(ctx, event)
	if err != nil {
		s.Log.WithError(err).WithField(constvars.LoggingEventTypeKey, event.Type).Error("seeder.publish error publishing event")
	}
	return err
}

func decodeSnapshot(raw []byte) (*models.DirectorySnapshot, error) {
	var snapshot models.DirectorySnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if err := utils.ValidateStruct(snapshot); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	for doctorID, calendar := range snapshot.Availability {
		if err := availability.Validate(calendar); err != nil {
			return nil, exceptions.ErrMalformedAvailabilityDocument(err, doctorID)
		}
	}
	return &snapshot, nil
}
