package routers

import (
	"medisense-service/internal/app/delivery/http/controllers"
	"medisense-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *controllers.ConsultationController) {
	router.With(middlewares.ConsultationGuard).Post("/", consultationController.RunConsultation)
	router.With(middlewares.ConsultationGuard).Get("/audio/{fileName}", consultationController.GetReplyAudio)
}
