package contracts

import (
	"context"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	Search(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error)
	FilterOptions(ctx context.Context, request *requests.FilterOptions) (*responses.FilterOptions, error)
	Card(ctx context.Context, request *requests.DoctorCard) (*responses.DoctorCard, error)
	FilterOptionsMaintainer
}

// FilterOptionsMaintainer keeps the cached filter menus in step with the directory.
type FilterOptionsMaintainer interface {
	InvalidateFilterOptions(ctx context.Context) error
	WarmFilterOptions(ctx context.Context) error
}

type DoctorRepository interface {
	FindDoctors(ctx context.Context, filters models.DoctorFilters) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	UpsertMany(ctx context.Context, doctors []models.Doctor) (int, error)
}

// FilterOptionsCache stores computed filter menus per filter combination.
// Get returns nil without error on a miss.
type FilterOptionsCache interface {
	Get(ctx context.Context, filters models.DoctorFilters) (*models.FilterOptions, error)
	Set(ctx context.Context, filters models.DoctorFilters, options models.FilterOptions) error
	Invalidate(ctx context.Context) error
}
