package routers

import (
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/feedbacks"
	"fmt"

	"github.com/go-chi/chi/v5"
)

// SetupFeedbackServiceRoutes mounts feedback submission and the public read
// paths prospective patients browse.
func SetupFeedbackServiceRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	feedbackController *feedbacks.FeedbackController,
) {
	setupBaseRouter(router, "feedback-service", internalConfig, middlewares)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route("/feedbacks", func(r chi.Router) {
			r.With(middlewares.Authenticate).Post("/", feedbackController.CreateFeedback)

			r.Get("/appointment/{appointmentID}", feedbackController.FindByAppointmentID)
			r.Get("/doctor/{doctorID}", feedbackController.FindByDoctorID)
			r.Get("/doctor/{doctorID}/stats", feedbackController.GetDoctorStats)
		})
	})
}
