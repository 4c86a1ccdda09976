package routes

import (
	"github.com/alexvr-dev/code_tutors/handlers"
	"github.com/alexvr-dev/code_tutors/middleware"
	"github.com/gofiber/fiber/v2"
)

func RequestRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	requests := api.Group("/requests", middleware.Protected(), middleware.TuteeRequired())
	requests.Get("/me", handlers.GetMyRequests)
	requests.Post("/new-booking", handlers.CreateNewBookingRequest)
	requests.Post("/change-cancel", handlers.CreateChangeCancelRequest)
}
