package mocks

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"sync/atomic"
)

var (
	_ contracts.DoctorRepository       = (*MockDoctorRepository)(nil)
	_ contracts.AvailabilityRepository = (*MockAvailabilityRepository)(nil)
)

// MockDoctorRepository serves Doctors unless a Func override is set. FindDoctors
// applies the pushed-down filters the way the Mongo query does.
type MockDoctorRepository struct {
	Doctors []models.Doctor

	FindDoctorsFunc func(ctx context.Context, filters models.DoctorFilters) ([]models.Doctor, error)
	FindByIDFunc    func(ctx context.Context, doctorID string) (*models.Doctor, error)
	UpsertManyFunc  func(ctx context.Context, doctors []models.Doctor) (int, error)

	FindDoctorsCallCount int32
	FindByIDCallCount    int32
	UpsertManyCallCount  int32
}

func (m *MockDoctorRepository) FindDoctors(ctx context.Context, filters models.DoctorFilters) ([]models.Doctor, error) {
	atomic.AddInt32(&m.FindDoctorsCallCount, 1)
	if m.FindDoctorsFunc != nil {
		return m.FindDoctorsFunc(ctx, filters)
	}

	result := make([]models.Doctor, 0, len(m.Doctors))
	for _, doctor := range m.Doctors {
		if filters.City != "" && doctor.City != filters.City {
			continue
		}
		if filters.Specialty != "" && doctor.Specialty != filters.Specialty {
			continue
		}
		if filters.Insurance != "" && !contains(doctor.AcceptedInsurances, filters.Insurance) {
			continue
		}
		result = append(result, doctor)
	}
	return result, nil
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	atomic.AddInt32(&m.FindByIDCallCount, 1)
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, doctorID)
	}
	for i := range m.Doctors {
		if m.Doctors[i].ID == doctorID {
			doctor := m.Doctors[i]
			return &doctor, nil
		}
	}
	return nil, nil
}

func (m *MockDoctorRepository) UpsertMany(ctx context.Context, doctors []models.Doctor) (int, error) {
	atomic.AddInt32(&m.UpsertManyCallCount, 1)
	if m.UpsertManyFunc != nil {
		return m.UpsertManyFunc(ctx, doctors)
	}
	m.Doctors = append(m.Doctors, doctors...)
	return len(doctors), nil
}

// MockAvailabilityRepository serves Calendars keyed by doctor id.
type MockAvailabilityRepository struct {
	Calendars map[string]models.AvailabilityCalendar

	FindByDoctorIDFunc func(ctx context.Context, doctorID string) (models.AvailabilityCalendar, bool, error)
	UpsertFunc         func(ctx context.Context, doctorID string, calendar models.AvailabilityCalendar) error

	FindByDoctorIDCallCount int32
	UpsertCallCount         int32
}

func (m *MockAvailabilityRepository) FindByDoctorID(ctx context.Context, doctorID string) (models.AvailabilityCalendar, bool, error) {
	atomic.AddInt32(&m.FindByDoctorIDCallCount, 1)
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, doctorID)
	}
	calendar, ok := m.Calendars[doctorID]
	return calendar, ok, nil
}

func (m *MockAvailabilityRepository) Upsert(ctx context.Context, doctorID string, calendar models.AvailabilityCalendar) error {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, doctorID, calendar)
	}
	if m.Calendars == nil {
		m.Calendars = make(map[string]models.AvailabilityCalendar)
	}
	m.Calendars[doctorID] = calendar
	return nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
