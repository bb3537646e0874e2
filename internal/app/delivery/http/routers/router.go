package routers

import (
	"doctor-finder-service/internal/app/config"
	"doctor-finder-service/internal/app/delivery/http/controllers"
	"doctor-finder-service/internal/app/delivery/http/middlewares"
	"doctor-finder-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	doctorController *controllers.DoctorController,
	availabilityController *controllers.AvailabilityController,
	distanceController *controllers.DistanceController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodOptions},
		AllowedHeaders: []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders: []string{constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, doctorController, availabilityController)
			})

			r.Route("/distance", func(r chi.Router) {
				attachDistanceRoutes(r, distanceController)
			})
		})
	})
}
