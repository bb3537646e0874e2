package routers

import (
	"context"
	"doctor-finder-service/internal/app/config"
	"doctor-finder-service/internal/app/delivery/http/controllers"
	"doctor-finder-service/internal/app/delivery/http/middlewares"
	"doctor-finder-service/internal/app/mocks"
	"doctor-finder-service/internal/pkg/dto/requests"
	"doctor-finder-service/internal/pkg/dto/responses"
	"doctor-finder-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type routerFixture struct {
	router       *chi.Mux
	doctors      *mocks.MockDoctorUsecase
	availability *mocks.MockAvailabilityUsecase
	distance     *mocks.MockDistanceUsecase
}

func newRouterFixture() *routerFixture {
	log := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			MaxRequests:    1000,
		},
	}

	f := &routerFixture{
		router:       chi.NewRouter(),
		doctors:      &mocks.MockDoctorUsecase{},
		availability: &mocks.MockAvailabilityUsecase{},
		distance:     &mocks.MockDistanceUsecase{},
	}

	SetupRoutes(
		f.router,
		internalConfig,
		middlewares.NewMiddlewares(log, internalConfig),
		controllers.NewDoctorController(log, f.doctors),
		controllers.NewAvailabilityController(log, f.availability),
		controllers.NewDistanceController(log, f.distance),
	)
	return f
}

func (f *routerFixture) get(t *testing.T, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSearchRoute(t *testing.T) {
	t.Run("Binds Trimmed Query And Coordinates", func(t *testing.T) {
		f := newRouterFixture()
		var got *requests.SearchDoctors
		f.doctors.SearchFunc = func(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error) {
			got = request
			return &responses.SearchDoctors{Doctors: []responses.DoctorSearchResult{}}, nil
		}

		rec, body := f.get(t, "/api/v1/doctors?query=%20cardio%20&city=Dallas&lat=32.7767&lng=-96.797")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		require.NotNil(t, got)
		assert.Equal(t, "cardio", got.Query)
		assert.Equal(t, "Dallas", got.City)
		require.NotNil(t, got.Lat)
		assert.Equal(t, 32.7767, *got.Lat)
		assert.Equal(t, -96.797, *got.Lng)
	})

	tests := []struct {
		name  string
		query string
	}{
		{name: "Latitude Without Longitude", query: "lat=32.7"},
		{name: "Unparsable Latitude", query: "lat=north&lng=-96.8"},
		{name: "Latitude Out Of Range", query: "lat=100&lng=-96.8"},
		{name: "Longitude Out Of Range", query: "lat=32.7&lng=200"},
		{name: "Query Too Long", query: "query=" + strings.Repeat("a", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture()

			rec, body := f.get(t, "/api/v1/doctors?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, int32(0), atomic.LoadInt32(&f.doctors.SearchCallCount))
		})
	}

	t.Run("Deadline Exceeded", func(t *testing.T) {
		f := newRouterFixture()
		f.doctors.SearchFunc = func(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error) {
			return nil, context.DeadlineExceeded
		}

		rec, _ := f.get(t, "/api/v1/doctors")

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}

func TestFilterOptionsRoute(t *testing.T) {
	f := newRouterFixture()
	var got *requests.FilterOptions
	f.doctors.FilterOptionsFunc = func(ctx context.Context, request *requests.FilterOptions) (*responses.FilterOptions, error) {
		got = request
		return &responses.FilterOptions{Insurances: []string{"Aetna"}, Cities: []string{}, Specialties: []string{}}, nil
	}

	rec, body := f.get(t, "/api/v1/doctors/filter-options?insurance=Aetna")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "Aetna", got.Insurance)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.doctors.CardCallCount))

	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Aetna"}, data["insurances"])
}

func TestCardRoute(t *testing.T) {
	t.Run("Passes Doctor ID", func(t *testing.T) {
		f := newRouterFixture()
		var got *requests.DoctorCard
		f.doctors.CardFunc = func(ctx context.Context, request *requests.DoctorCard) (*responses.DoctorCard, error) {
			got = request
			return &responses.DoctorCard{NextAvailableLabel: "No availability"}, nil
		}

		rec, _ := f.get(t, "/api/v1/doctors/d1/card")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, "d1", got.DoctorID)
		assert.Nil(t, got.Lat)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		f := newRouterFixture()
		f.doctors.CardFunc = func(ctx context.Context, request *requests.DoctorCard) (*responses.DoctorCard, error) {
			return nil, exceptions.ErrDoctorNotFound(request.DoctorID)
		}

		rec, _ := f.get(t, "/api/v1/doctors/missing/card")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAvailabilityRoutes(t *testing.T) {
	f := newRouterFixture()
	f.availability.NormalizedCalendarFunc = func(ctx context.Context, doctorID string) (*responses.Availability, error) {
		return &responses.Availability{
			DoctorID:    doctorID,
			HasCalendar: true,
			Calendar:    map[string][]string{"2024-10-16": {"09:00"}},
		}, nil
	}
	f.availability.NextAvailabilityFunc = func(ctx context.Context, doctorID string) (*responses.NextAvailability, error) {
		return &responses.NextAvailability{
			DoctorID:    doctorID,
			HasCalendar: true,
			Slot:        &responses.Slot{Date: "2024-10-16", Time: "09:00"},
			Label:       "Wed, Oct 16",
		}, nil
	}

	rec, body := f.get(t, "/api/v1/doctors/d1/availability")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "d1", data["doctorId"])

	rec, body = f.get(t, "/api/v1/doctors/d1/next-availability")
	assert.Equal(t, http.StatusOK, rec.Code)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "Wed, Oct 16", data["label"])
}

func TestDistanceRoute(t *testing.T) {
	t.Run("Binds Both Coordinates", func(t *testing.T) {
		f := newRouterFixture()
		var got *requests.Distance
		f.distance.DistanceFunc = func(ctx context.Context, request *requests.Distance) (*responses.Distance, error) {
			got = request
			miles := 224.8
			return &responses.Distance{DistanceMiles: &miles}, nil
		}

		rec, body := f.get(t, "/api/v1/distance?patientLat=29.7604&patientLng=-95.3698&clinicLat=32.7767&clinicLng=-96.797")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, 29.7604, *got.PatientLat)
		assert.Equal(t, -96.797, *got.ClinicLng)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, 224.8, data["distanceMiles"])
	})

	t.Run("Half Clinic Coordinate", func(t *testing.T) {
		f := newRouterFixture()

		rec, _ := f.get(t, "/api/v1/distance?clinicLat=32.7767")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, int32(0), atomic.LoadInt32(&f.distance.DistanceCallCount))
	})
}
