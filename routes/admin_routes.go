package routes

import (
	"github.com/alexvr-dev/code_tutors/handlers"
	"github.com/alexvr-dev/code_tutors/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	bookings := admin.Group("/bookings")
	bookings.Get("", handlers.AdminGetAllBookings)
	bookings.Post("", handlers.AdminCreateBooking)
	bookings.Put("/:bookingId", handlers.AdminUpdateBooking)
	bookings.Delete("/:bookingId", handlers.AdminDeleteBooking)
	bookings.Post("/:bookingId/mark-paid", handlers.MarkBookingPaid)

	requests := admin.Group("/requests")
	requests.Get("", handlers.AdminGetAllRequests)
	requests.Get("/:requestId", handlers.GetRequestInfo)
	requests.Post("/:requestId/approve", handlers.ApproveRequest)
	requests.Delete("/:requestId", handlers.DeleteRequest)

	users := admin.Group("/users")
	users.Get("", handlers.AdminGetAllUsers)
	users.Delete("/:userId", handlers.AdminDeleteUser)
}
