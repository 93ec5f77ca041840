package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.With(middlewares.Authenticate).Post("/mark-all-seen", notificationController.MarkAllSeen)
	router.With(middlewares.Authenticate).Post("/delete-all-seen", notificationController.DeleteAllSeen)
}
