package routers

import (
	"doctor-finder-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController, availabilityController *controllers.AvailabilityController) {
	router.Get("/", doctorController.Search)
	router.Get("/filter-options", doctorController.FilterOptions)
	router.Route("/{doctorId}", func(r chi.Router) {
		r.Get("/card", doctorController.Card)
		r.Get("/availability", availabilityController.Calendar)
		r.Get("/next-availability", availabilityController.NextAvailability)
	})
}
