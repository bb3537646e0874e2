package controllers

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"
	"doctor-finder-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultControllerTimeout)
	defer cancel()

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamRequired(constvars.URLParamDoctorID))
		return
	}

	response, err := ctrl.AvailabilityUsecase.NormalizedCalendar(ctx, doctorID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, response)
}

func (ctrl *AvailabilityController) NextAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultControllerTimeout)
	defer cancel()

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamRequired(constvars.URLParamDoctorID))
		return
	}

	response, err := ctrl.AvailabilityUsecase.NextAvailability(ctx, doctorID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNextAvailabilitySuccessMessage, response)
}
