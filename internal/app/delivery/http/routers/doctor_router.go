package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController, bookingController *controllers.BookingController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", doctorController.GetApprovedDoctors)
	router.Post("/apply", doctorController.ApplyDoctor)
	router.Put("/profile", doctorController.UpdateDoctorProfile)
	router.With(middlewares.RequireAdmin).Get("/all", doctorController.GetDoctors)
	router.Get("/{doctor_id}", doctorController.GetDoctor)
	router.Get("/{doctor_id}/booked-slots", bookingController.GetBookedSlots)
	router.With(middlewares.RequireAdmin).Put("/{doctor_id}/status", doctorController.UpdateDoctorStatus)
}
