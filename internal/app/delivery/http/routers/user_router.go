package routers

import (
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/auth"
	"carebook-service/internal/app/services/core/users"
	"fmt"

	"github.com/go-chi/chi/v5"
)

// SetupUserServiceRoutes mounts authentication and profile routes. The
// /users/{userID} read is unauthenticated so the other services can resolve
// user records without a session.
func SetupUserServiceRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
) {
	setupBaseRouter(router, "user-service", internalConfig, middlewares)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authController.Register)
			r.Post("/login", authController.Login)
			r.With(middlewares.Authenticate).Post("/logout", authController.Logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(middlewares.Authenticate).Get("/profile", userController.GetUserProfileBySession)
			r.With(middlewares.Authenticate).Put("/profile", userController.UpdateUserBySession)
			r.Get("/{userID}", userController.GetUserByID)
		})
	})
}
