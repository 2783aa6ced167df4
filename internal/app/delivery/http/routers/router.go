package routers

import (
	"medisense-service/internal/app/config"
	"medisense-service/internal/app/delivery/http/controllers"
	"medisense-service/internal/app/delivery/http/middlewares"
	"medisense-service/internal/app/delivery/http/web"
	"medisense-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	consultationController *controllers.ConsultationController,
) error {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	authRateLimiter := middlewares.NewAuthRateLimiter()

	apiBase := utils.BuildEndpointPath(internalConfig.App.EndpointPrefix, internalConfig.App.Version)

	indexHandler, err := web.NewIndexHandler(apiBase)
	if err != nil {
		return err
	}
	router.Get("/", indexHandler)

	router.Route(apiBase, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authRateLimiter, authController)
		})

		r.Route("/consultations", func(r chi.Router) {
			attachConsultationRoutes(r, middlewares, consultationController)
		})
	})
	return nil
}
