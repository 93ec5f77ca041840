package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *controllers.AnalyticsController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/dashboard", analyticsController.GetDashboard)
}
