package handlers

import (
	"fmt"

	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/alexvr-dev/code_tutors/notifications"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SendInquiryRequest struct {
	Message string `json:"message" validate:"required"`
}

// SendInquiry sends a free-form message from any user to the staff. Every
// admin is notified; the inquiry itself is addressed to the first admin so a
// single staff member owns the response.
func SendInquiry(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req SendInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sender models.User
	if err := database.DB.First(&sender, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var admin models.User
	if err := database.DB.Where("is_staff = ?", true).Order("created_at").First(&admin).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No staff available to receive inquiries"})
	}

	var inquiry models.Inquiry
	var outbox notifications.Outbox
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		inquiry = models.Inquiry{
			SenderID:    sender.ID,
			RecipientID: admin.ID,
			Message:     req.Message,
			Status:      models.InquiryStatusPending,
		}
		if err := tx.Create(&inquiry).Error; err != nil {
			return err
		}

		outbox.NotifyAdmins(tx, fmt.Sprintf("New inquiry from %s.", sender.FullName()))
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send inquiry"})
	}
	outbox.Dispatch()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Inquiry sent.",
		"inquiry": inquiry,
	})
}

type RespondToInquiryRequest struct {
	Response string `json:"response" validate:"required"`
}

func RespondToInquiry(c *fiber.Ctx) error {
	inquiryID := c.Params("inquiryId")

	var req RespondToInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var inquiry models.Inquiry
	if err := database.DB.Preload("Sender").First(&inquiry, "id = ?", inquiryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inquiry not found"})
	}
	if inquiry.Status == models.InquiryStatusResponded {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Inquiry has already been responded to"})
	}

	var outbox notifications.Outbox
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		inquiry.Response = &req.Response
		inquiry.Status = models.InquiryStatusResponded
		if err := tx.Save(&inquiry).Error; err != nil {
			return err
		}
		return outbox.Notify(tx, inquiry.Sender, "You have a response to your inquiry.")
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to respond to inquiry"})
	}
	outbox.Dispatch()

	return c.JSON(fiber.Map{"message": "Response sent.", "inquiry": inquiry})
}
