package handlers

import (
	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListTutors(c *fiber.Ctx) error {
	var tutors []models.Tutor
	if err := database.DB.
		Preload("User").
		Joins("JOIN users ON users.id = tutors.user_id").
		Order("users.last_name, users.first_name").
		Find(&tutors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tutors"})
	}

	return c.JSON(tutors)
}

func ListTutees(c *fiber.Ctx) error {
	var tutees []models.Tutee
	if err := database.DB.
		Preload("User").
		Joins("JOIN users ON users.id = tutees.user_id").
		Order("users.last_name, users.first_name").
		Find(&tutees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tutees"})
	}

	return c.JSON(tutees)
}

func AdminGetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("last_name, first_name").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userResponse(user))
	}
	return c.JSON(responses)
}

// AdminDeleteUser removes an account and everything hanging off it.
func AdminDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.IsStaff {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Staff accounts cannot be deleted"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if user.IsTutor {
			var bookingIDs []string
			if err := tx.Model(&models.Booking{}).Where("tutor_id = ?", user.ID).Pluck("id", &bookingIDs).Error; err != nil {
				return err
			}
			if len(bookingIDs) > 0 {
				if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&models.ChangeCancelBookingRequest{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", bookingIDs).Delete(&models.Booking{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Tutor{}).Error; err != nil {
				return err
			}
		} else {
			var requestIDs []string
			if err := tx.Model(&models.Request{}).Where("tutee_id = ?", user.ID).Pluck("id", &requestIDs).Error; err != nil {
				return err
			}
			if len(requestIDs) > 0 {
				if err := tx.Where("request_id IN ?", requestIDs).Delete(&models.NewBookingRequest{}).Error; err != nil {
					return err
				}
				if err := tx.Where("request_id IN ?", requestIDs).Delete(&models.ChangeCancelBookingRequest{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", requestIDs).Delete(&models.Request{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("tutee_id = ?", user.ID).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Tutee{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR recipient_id = ?", user.ID, user.ID).Delete(&models.Inquiry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted."})
}
