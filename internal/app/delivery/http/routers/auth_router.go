package routers

import (
	"medisense-service/internal/app/delivery/http/controllers"
	"medisense-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, rateLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(rateLimiter.Limit).Post("/", authController.HandleAuthAction)
	router.With(rateLimiter.Limit).Post("/register", authController.Register)
	router.With(rateLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.OptionalAuthenticate).Get("/session", authController.GetSession)
}
