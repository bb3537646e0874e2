package distance

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type distanceUsecase struct {
	Calculator contracts.DistanceCalculator
	Log        *zap.Logger
}

func NewDistanceUsecase(calculator contracts.DistanceCalculator, logger *zap.Logger) contracts.DistanceUsecase {
	return &distanceUsecase{
		Calculator: calculator,
		Log:        logger,
	}
}

func (uc *distanceUsecase) Distance(ctx context.Context, request *requests.Distance) (*responses.Distance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("distanceUsecase.Distance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient := CoordinateFromPointers(request.PatientLat, request.PatientLng)
	clinic := CoordinateFromPointers(request.ClinicLat, request.ClinicLng)

	miles, err := uc.Calculator.DistanceMiles(patient, clinic)
	if err != nil {
		uc.Log.Error("distanceUsecase.Distance error computing distance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("distanceUsecase.Distance succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, miles != nil),
	)
	return &responses.Distance{DistanceMiles: miles}, nil
}

// CoordinateFromPointers pairs lat and lng into a coordinate, or nil when either is missing.
func CoordinateFromPointers(lat, lng *float64) *models.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}
	return &models.Coordinate{Lat: *lat, Lng: *lng}
}
