package controllers

import (
	"context"
	"doctor-finder-service/internal/pkg/exceptions"
	"doctor-finder-service/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// coordinatePair reads an optional lat/lng pair from the query string.
func coordinatePair(r *http.Request, latParam, lngParam string) (*float64, *float64, error) {
	lat, err := utils.GetOptionalFloatQueryParam(r, latParam)
	if err != nil {
		return nil, nil, err
	}
	lng, err := utils.GetOptionalFloatQueryParam(r, lngParam)
	if err != nil {
		return nil, nil, err
	}
	return lat, lng, nil
}
