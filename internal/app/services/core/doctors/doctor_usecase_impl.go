package doctors

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/app/services/core/availability"
	"doctor-finder-service/internal/app/services/core/distance"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/dto/responses"
	"doctor-finder-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository       contracts.DoctorRepository
	AvailabilityRepository contracts.AvailabilityRepository
	FilterOptionsCache     contracts.FilterOptionsCache
	DistanceCalculator     contracts.DistanceCalculator
	Clock                  contracts.Clock
	Log                    *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	availabilityRepository contracts.AvailabilityRepository,
	filterOptionsCache contracts.FilterOptionsCache,
	distanceCalculator contracts.DistanceCalculator,
	clock contracts.Clock,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:       doctorRepository,
		AvailabilityRepository: availabilityRepository,
		FilterOptionsCache:     filterOptionsCache,
		DistanceCalculator:     distanceCalculator,
		Clock:                  clock,
		Log:                    logger,
	}
}

func (uc *doctorUsecase) Search(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	filters := models.DoctorFilters{
		Insurance: request.Insurance,
		City:      request.City,
		Specialty: request.Specialty,
	}
	uc.Log.Info("doctorUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFiltersKey, filters),
		zap.String(constvars.LoggingQueryKey, request.Query),
	)

	base, err := uc.findBaseSet(ctx, requestID, filters)
	if err != nil {
		return nil, err
	}

	options := DistinctFilterValues(base)
	matched := Match(base, models.DoctorSearchQuery{Text: request.Query})
	patient := distance.CoordinateFromPointers(request.Lat, request.Lng)

	results := make([]responses.DoctorSearchResult, 0, len(matched))
	for _, doctor := range matched {
		results = append(results, responses.DoctorSearchResult{
			Doctor:        doctor.ConvertIntoResponse(),
			DistanceMiles: uc.distanceTo(requestID, patient, doctor),
		})
	}

	uc.Log.Info("doctorUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(base)),
		zap.Int(constvars.LoggingMatchedCountKey, len(results)),
	)
	return &responses.SearchDoctors{
		Doctors:       results,
		FilterOptions: options.ConvertIntoResponse(),
	}, nil
}

func (uc *doctorUsecase) FilterOptions(ctx context.Context, request *requests.FilterOptions) (*responses.FilterOptions, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	filters := models.DoctorFilters{
		Insurance: request.Insurance,
		City:      request.City,
		Specialty: request.Specialty,
	}
	uc.Log.Info("doctorUsecase.FilterOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFiltersKey, filters),
	)

	cached := uc.cachedFilterOptions(ctx, requestID, filters)
	if cached != nil {
		response := cached.ConvertIntoResponse()
		return &response, nil
	}

	base, err := uc.findBaseSet(ctx, requestID, filters)
	if err != nil {
		return nil, err
	}

	options := uc.storeFilterOptions(ctx, requestID, filters, base)
	response := options.ConvertIntoResponse()
	return &response, nil
}

func (uc *doctorUsecase) Card(ctx context.Context, request *requests.DoctorCard) (*responses.DoctorCard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Card called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.Card error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(request.DoctorID)
	}

	calendar, hasCalendar, err := uc.AvailabilityRepository.FindByDoctorID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.Card error fetching availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var slot *models.Slot
	if hasCalendar {
		slot, err = uc.nextSlot(calendar)
		if err != nil {
			uc.Log.Error("doctorUsecase.Card error resolving next slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	patient := distance.CoordinateFromPointers(request.Lat, request.Lng)
	insurances, moreInsurances := preview(doctor.AcceptedInsurances, constvars.DoctorCardPreviewSize)
	languages, moreLanguages := preview(doctor.SpokenLanguages, constvars.DoctorCardPreviewSize)

	uc.Log.Info("doctorUsecase.Card succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return &responses.DoctorCard{
		Doctor:              doctor.ConvertIntoResponse(),
		DistanceMiles:       uc.distanceTo(requestID, patient, *doctor),
		NextAvailable:       availability.SlotIntoResponse(slot),
		NextAvailableLabel:  availability.FormatNextAvailable(slot),
		HasCalendar:         hasCalendar,
		InsurancesPreview:   insurances,
		MoreInsurancesCount: moreInsurances,
		LanguagesPreview:    languages,
		MoreLanguagesCount:  moreLanguages,
	}, nil
}

func (uc *doctorUsecase) InvalidateFilterOptions(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.InvalidateFilterOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.FilterOptionsCache.Invalidate(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.InvalidateFilterOptions error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// WarmFilterOptions recomputes and stores the unfiltered filter options.
func (uc *doctorUsecase) WarmFilterOptions(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.WarmFilterOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	filters := models.DoctorFilters{}
	base, err := uc.findBaseSet(ctx, requestID, filters)
	if err != nil {
		return err
	}

	options := DistinctFilterValues(base)
	err = uc.FilterOptionsCache.Set(ctx, filters, options)
	if err != nil {
		uc.Log.Error("doctorUsecase.WarmFilterOptions error caching filter options",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("doctorUsecase.WarmFilterOptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(base)),
	)
	return nil
}

// findBaseSet loads the doctors satisfying filters. The repository pushes the
// filters down; applying them again here keeps the result exact regardless.
func (uc *doctorUsecase) findBaseSet(ctx context.Context, requestID string, filters models.DoctorFilters) ([]models.Doctor, error) {
	records, err := uc.DoctorRepository.FindDoctors(ctx, filters)
	if err != nil {
		uc.Log.Error("doctorUsecase.findBaseSet error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return ApplyFilters(records, filters), nil
}

// nextSlot resolves against the normalized calendar so the card agrees with
// the availability endpoints.
func (uc *doctorUsecase) nextSlot(calendar models.AvailabilityCalendar) (*models.Slot, error) {
	now := uc.Clock.Now()
	normalized, err := availability.Normalize(calendar, now)
	if err != nil {
		return nil, err
	}
	return availability.ResolveNextSlot(normalized, now)
}

func (uc *doctorUsecase) storeFilterOptions(ctx context.Context, requestID string, filters models.DoctorFilters, base []models.Doctor) models.FilterOptions {
	options := DistinctFilterValues(base)
	if err := uc.FilterOptionsCache.Set(ctx, filters, options); err != nil {
		uc.Log.Warn("doctorUsecase.storeFilterOptions error caching filter options",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return options
}

func (uc *doctorUsecase) cachedFilterOptions(ctx context.Context, requestID string, filters models.DoctorFilters) *models.FilterOptions {
	cached, err := uc.FilterOptionsCache.Get(ctx, filters)
	if err != nil {
		uc.Log.Warn("doctorUsecase.cachedFilterOptions error reading cache, computing directly",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	return cached
}

func (uc *doctorUsecase) distanceTo(requestID string, patient *models.Coordinate, doctor models.Doctor) *float64 {
	miles, err := uc.DistanceCalculator.DistanceMiles(patient, doctor.Coordinates)
	if err != nil {
		uc.Log.Warn("doctorUsecase.distanceTo skipping distance for doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return nil
	}
	return miles
}

// preview returns the first size values and how many were left out.
func preview(values []string, size int) ([]string, int) {
	if len(values) <= size {
		return append([]string{}, values...), 0
	}
	return append([]string{}, values[:size]...), len(values) - size
}
