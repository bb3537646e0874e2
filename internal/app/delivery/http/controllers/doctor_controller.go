package controllers

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/exceptions"
	"doctor-finder-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultControllerTimeout)
	defer cancel()

	lat, lng, err := coordinatePair(r, constvars.QueryParamLat, constvars.QueryParamLng)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.SearchDoctors{
		Query:     utils.GetTrimmedQueryParam(r, constvars.QueryParamQuery),
		Insurance: utils.GetTrimmedQueryParam(r, constvars.QueryParamInsurance),
		City:      utils.GetTrimmedQueryParam(r, constvars.QueryParamCity),
		Specialty: utils.GetTrimmedQueryParam(r, constvars.QueryParamSpecialty),
		Lat:       lat,
		Lng:       lng,
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.DoctorUsecase.Search(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchDoctorsSuccessMessage, response)
}

func (ctrl *DoctorController) FilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultControllerTimeout)
	defer cancel()

	request := &requests.FilterOptions{
		Insurance: utils.GetTrimmedQueryParam(r, constvars.QueryParamInsurance),
		City:      utils.GetTrimmedQueryParam(r, constvars.QueryParamCity),
		Specialty: utils.GetTrimmedQueryParam(r, constvars.QueryParamSpecialty),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.DoctorUsecase.FilterOptions(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFilterOptionsSuccessMessage, response)
}

func (ctrl *DoctorController) Card(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultControllerTimeout)
	defer cancel()

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamRequired(constvars.URLParamDoctorID))
		return
	}

	lat, lng, err := coordinatePair(r, constvars.QueryParamLat, constvars.QueryParamLng)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.DoctorCard{
		DoctorID: doctorID,
		Lat:      lat,
		Lng:      lng,
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.DoctorUsecase.Card(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorCardSuccessMessage, response)
}
