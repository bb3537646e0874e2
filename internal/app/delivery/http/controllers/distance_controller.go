package controllers

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/exceptions"
	"doctor-finder-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DistanceController struct {
	Log             *zap.Logger
	DistanceUsecase contracts.DistanceUsecase
}

func NewDistanceController(logger *zap.Logger, distanceUsecase contracts.DistanceUsecase) *DistanceController {
	return &DistanceController{
		Log:             logger,
		DistanceUsecase: distanceUsecase,
	}
}

func (ctrl *DistanceController) Distance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultControllerTimeout)
	defer cancel()

	patientLat, patientLng, err := coordinatePair(r, constvars.QueryParamPatientLat, constvars.QueryParamPatientLng)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicLat, clinicLng, err := coordinatePair(r, constvars.QueryParamClinicLat, constvars.QueryParamClinicLng)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.Distance{
		PatientLat: patientLat,
		PatientLng: patientLng,
		ClinicLat:  clinicLat,
		ClinicLng:  clinicLng,
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.DistanceUsecase.Distance(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDistanceSuccessMessage, response)
}
