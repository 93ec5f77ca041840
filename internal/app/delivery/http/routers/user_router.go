package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Use(middlewares.Authenticate)

	router.Get("/profile", userController.GetProfile)
	router.Put("/profile", userController.UpdateProfile)
	router.Post("/profile/picture", userController.UploadProfilePicture)
	router.With(middlewares.RequireAdmin).Get("/", userController.GetUsers)
	router.Get("/{user_id}", userController.GetProfile)
	router.With(middlewares.RequireAdmin).Delete("/{user_id}", userController.DeleteUser)
}
