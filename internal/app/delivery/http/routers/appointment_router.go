package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	bookingLimiter *middlewares.RateLimiter,
	appointmentController *controllers.AppointmentController,
	bookingController *controllers.BookingController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/", appointmentController.GetAppointments)
	router.With(bookingLimiter.Limit).Post("/check-availability", bookingController.CheckAvailability)
	router.With(bookingLimiter.Limit).Post("/book", bookingController.BookAppointment)
}
