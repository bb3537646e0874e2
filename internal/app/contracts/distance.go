package contracts

import (
	"context"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/dto/responses"
)

type DistanceUsecase interface {
	Distance(ctx context.Context, request *requests.Distance) (*responses.Distance, error)
}

type DistanceCalculator interface {
	DistanceMiles(patient, clinic *models.Coordinate) (*float64, error)
}
