package utils

import (
	"doctor-finder-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	BuildSuccessResponse(rec, http.StatusOK, "ok", map[string]int{"count": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["count"])
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error Keeps Status", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrDoctorNotFound("d-404"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "doctor not found", body["message"])
		assert.Contains(t, body["dev_message"], "d-404")
	})

	t.Run("Production Hides Dev Message", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrDoctorNotFound("d-404"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		_, hasDevMessage := body["dev_message"]
		assert.False(t, hasDevMessage)
		_, hasLocations := body["locations"]
		assert.False(t, hasLocations)
	})

	t.Run("Plain Error Is Internal", func(t *testing.T) {
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
