package mocks

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/dto/responses"
	"errors"
	"sync/atomic"
)

var (
	_ contracts.DoctorUsecase       = (*MockDoctorUsecase)(nil)
	_ contracts.AvailabilityUsecase = (*MockAvailabilityUsecase)(nil)
	_ contracts.DistanceUsecase     = (*MockDistanceUsecase)(nil)
)

type MockDoctorUsecase struct {
	MockFilterOptionsMaintainer

	SearchFunc        func(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error)
	FilterOptionsFunc func(ctx context.Context, request *requests.FilterOptions) (*responses.FilterOptions, error)
	CardFunc          func(ctx context.Context, request *requests.DoctorCard) (*responses.DoctorCard, error)

	SearchCallCount        int32
	FilterOptionsCallCount int32
	CardCallCount          int32
}

func (m *MockDoctorUsecase) Search(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error) {
	atomic.AddInt32(&m.SearchCallCount, 1)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, request)
	}
	return nil, errors.New("SearchFunc not implemented in mock")
}

func (m *MockDoctorUsecase) FilterOptions(ctx context.Context, request *requests.FilterOptions) (*responses.FilterOptions, error) {
	atomic.AddInt32(&m.FilterOptionsCallCount, 1)
	if m.FilterOptionsFunc != nil {
		return m.FilterOptionsFunc(ctx, request)
	}
	return nil, errors.New("FilterOptionsFunc not implemented in mock")
}

func (m *MockDoctorUsecase) Card(ctx context.Context, request *requests.DoctorCard) (*responses.DoctorCard, error) {
	atomic.AddInt32(&m.CardCallCount, 1)
	if m.CardFunc != nil {
		return m.CardFunc(ctx, request)
	}
	return nil, errors.New("CardFunc not implemented in mock")
}

type MockAvailabilityUsecase struct {
	NormalizedCalendarFunc func(ctx context.Context, doctorID string) (*responses.Availability, error)
	NextAvailabilityFunc   func(ctx context.Context, doctorID string) (*responses.NextAvailability, error)

	NormalizedCalendarCallCount int32
	NextAvailabilityCallCount   int32
}

func (m *MockAvailabilityUsecase) NormalizedCalendar(ctx context.Context, doctorID string) (*responses.Availability, error) {
	atomic.AddInt32(&m.NormalizedCalendarCallCount, 1)
	if m.NormalizedCalendarFunc != nil {
		return m.NormalizedCalendarFunc(ctx, doctorID)
	}
	return nil, errors.New("NormalizedCalendarFunc not implemented in mock")
}

func (m *MockAvailabilityUsecase) NextAvailability(ctx context.Context, doctorID string) (*responses.NextAvailability, error) {
	atomic.AddInt32(&m.NextAvailabilityCallCount, 1)
	if m.NextAvailabilityFunc != nil {
		return m.NextAvailabilityFunc(ctx, doctorID)
	}
	return nil, errors.New("NextAvailabilityFunc not implemented in mock")
}

type MockDistanceUsecase struct {
	DistanceFunc func(ctx context.Context, request *requests.Distance) (*responses.Distance, error)

	DistanceCallCount int32
}

func (m *MockDistanceUsecase) Distance(ctx context.Context, request *requests.Distance) (*responses.Distance, error) {
	atomic.AddInt32(&m.DistanceCallCount, 1)
	if m.DistanceFunc != nil {
		return m.DistanceFunc(ctx, request)
	}
	return nil, errors.New("DistanceFunc not implemented in mock")
}
