package routes

import (
	"github.com/alexvr-dev/code_tutors/handlers"
	"github.com/alexvr-dev/code_tutors/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/sign-up/tutee", handlers.RegisterTutee)
	auth.Post("/sign-up/tutor", handlers.RegisterTutor)
	auth.Post("/login", handlers.LoginUser)

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Put("/password", handlers.ChangePassword)
}
