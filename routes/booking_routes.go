package routes

import (
	"github.com/alexvr-dev/code_tutors/handlers"
	"github.com/alexvr-dev/code_tutors/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected(), middleware.TuteeRequired())
	bookings.Get("/me", handlers.GetMyBookings)
	bookings.Get("/invoices", handlers.GetMyInvoices)

	tutorBookings := api.Group("/tutor/bookings", middleware.Protected(), middleware.TutorRequired())
	tutorBookings.Get("/me", handlers.GetMyTutorBookings)
}
