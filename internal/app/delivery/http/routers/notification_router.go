package routers

import (
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/notifications"
	"fmt"

	"github.com/go-chi/chi/v5"
)

// SetupNotificationServiceRoutes mounts the per-user notification feed plus the
// unauthenticated appointment-event endpoint the appointment service posts to.
func SetupNotificationServiceRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	notificationController *notifications.NotificationController,
) {
	setupBaseRouter(router, "notification-service", internalConfig, middlewares)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route("/notifications", func(r chi.Router) {
			r.Post("/appointment-event", notificationController.HandleAppointmentEvent)

			r.With(middlewares.Authenticate).Post("/", notificationController.CreateNotification)
			r.With(middlewares.Authenticate).Get("/", notificationController.FindBySession)
			r.With(middlewares.Authenticate).Get("/unread-count", notificationController.CountUnread)
			r.With(middlewares.Authenticate).Patch("/{notificationID}/read", notificationController.MarkAsRead)
		})
	})
}
