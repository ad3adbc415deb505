package routers

import (
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/appointments"
	"fmt"

	"github.com/go-chi/chi/v5"
)

// SetupAppointmentServiceRoutes mounts booking, status changes, and slot
// availability. The /internal read and the slot listing skip authentication:
// the first serves the other services, the second lets patients browse before
// logging in.
func SetupAppointmentServiceRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
) {
	setupBaseRouter(router, "appointment-service", internalConfig, middlewares)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route("/appointments", func(r chi.Router) {
			r.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
			r.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
			r.With(middlewares.Authenticate).Get("/{appointmentID}", appointmentController.FindByID)
			r.With(middlewares.Authenticate).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)

			r.Get("/internal/{appointmentID}", appointmentController.GetByIDInternal)
		})

		r.Get("/doctors/{doctorID}/slots", appointmentController.GetAvailableSlots)
	})
}
