package routes

import (
	"github.com/alexvr-dev/code_tutors/handlers"
	"github.com/alexvr-dev/code_tutors/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InboxRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	inbox := api.Group("/inbox", middleware.Protected())
	inbox.Get("", handlers.GetInbox)
	inbox.Get("/unread-count", handlers.UnreadNotificationsCount)
	inbox.Post("/mark-read", handlers.MarkNotificationsAsRead)
	inbox.Delete("/notifications/:notificationId", handlers.DeleteNotification)

	inquiries := api.Group("/inquiries", middleware.Protected())
	inquiries.Post("", handlers.SendInquiry)
	inquiries.Post("/:inquiryId/respond", middleware.AdminRequired(), handlers.RespondToInquiry)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
