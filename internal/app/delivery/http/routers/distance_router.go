package routers

import (
	"doctor-finder-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDistanceRoutes(router chi.Router, distanceController *controllers.DistanceController) {
	router.Get("/", distanceController.Distance)
}
