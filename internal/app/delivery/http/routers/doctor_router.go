package routers

import (
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/doctors"
	"fmt"

	"github.com/go-chi/chi/v5"
)

// SetupDoctorServiceRoutes mounts the doctor directory. Reads are public;
// mutations need a session.
func SetupDoctorServiceRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
) {
	setupBaseRouter(router, "doctor-service", internalConfig, middlewares)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route("/doctors", func(r chi.Router) {
			r.Get("/", doctorController.FindAll)
			r.Get("/{doctorID}", doctorController.FindByID)
			r.Get("/by-user/{userID}", doctorController.FindByUserID)

			r.With(middlewares.Authenticate).Post("/", doctorController.CreateDoctor)
			r.With(middlewares.Authenticate).Put("/{doctorID}", doctorController.UpdateDoctor)
			r.With(middlewares.Authenticate).Put("/{doctorID}/availability", doctorController.UpdateAvailability)
		})
	})
}
