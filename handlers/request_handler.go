package handlers

import (
	"fmt"
	"time"

	config "github.com/alexvr-dev/code_tutors/configs"
	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/alexvr-dev/code_tutors/notifications"
	"github.com/alexvr-dev/code_tutors/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewBookingRequestPayload struct {
	Frequency       string `json:"frequency" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required"`
	Language        string `json:"language" validate:"required"`
	Details         string `json:"details"`
}

// CreateNewBookingRequest records a tutee's wish for a new booking. The
// parent Request and its satellite are created in one transaction and the
// lateness flag is computed from the request's own creation date.
func CreateNewBookingRequest(c *fiber.Ctx) error {
	tuteeID := currentUserID(c)

	var req NewBookingRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !containsString(config.FrequencyChoices(), req.Frequency) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Select a valid frequency."})
	}
	if !containsString(config.LanguageChoices(), req.Language) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Select a valid language."})
	}
	duration := time.Duration(req.DurationMinutes) * time.Minute
	if !containsDuration(config.DurationChoices(), duration) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Select a valid duration."})
	}

	var tutee models.Tutee
	if err := database.DB.Preload("User").First(&tutee, "user_id = ?", tuteeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutee not found"})
	}

	var request models.Request
	var outbox notifications.Outbox
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		request = models.Request{
			TuteeID:     tutee.UserID,
			RequestType: models.RequestTypeNewBooking,
			Status:      models.RequestStatusPending,
		}
		if err := tx.Create(&request).Error; err != nil {
			return err
		}

		satellite := models.NewBookingRequest{
			RequestID: request.ID,
			Frequency: req.Frequency,
			Duration:  duration,
			Language:  req.Language,
			Details:   req.Details,
		}
		if err := tx.Create(&satellite).Error; err != nil {
			return err
		}
		request.NewBookingRequest = &satellite

		request.IsLate = services.ClassifyLateness(request.CreatedAt, request.CreatedAt)
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		outbox.NotifyAdmins(tx, fmt.Sprintf("%s request from %s.",
			request.RequestType, tutee.User.FullName()))
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create request"})
	}
	outbox.Dispatch()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "New Booking Request successfully created!",
		"request": request,
	})
}

type ChangeCancelRequestPayload struct {
	BookingID      string `json:"booking_id" validate:"required,uuid"`
	ChangeOrCancel string `json:"change_or_cancel" validate:"required,oneof=Change Cancel"`
	Details        string `json:"details"`
}

// CreateChangeCancelRequest records a tutee's wish to change or cancel one of
// their bookings. Lateness is computed against the target booking's date.
func CreateChangeCancelRequest(c *fiber.Ctx) error {
	tuteeID := currentUserID(c)

	var req ChangeCancelRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", req.BookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if fieldErrs := services.ValidateChangeCancel(req.ChangeOrCancel, req.Details, booking, tuteeID); fieldErrs.HasErrors() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fieldErrs})
	}

	var tutee models.Tutee
	if err := database.DB.Preload("User").First(&tutee, "user_id = ?", tuteeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutee not found"})
	}

	var request models.Request
	var outbox notifications.Outbox
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		request = models.Request{
			TuteeID:     tutee.UserID,
			RequestType: models.RequestTypeChangeCancel,
			Status:      models.RequestStatusPending,
		}
		if err := tx.Create(&request).Error; err != nil {
			return err
		}

		satellite := models.ChangeCancelBookingRequest{
			RequestID:      request.ID,
			ChangeOrCancel: req.ChangeOrCancel,
			BookingID:      booking.ID,
			Details:        req.Details,
		}
		if err := tx.Create(&satellite).Error; err != nil {
			return err
		}
		request.ChangeCancelBookingRequest = &satellite

		request.IsLate = services.ClassifyLateness(request.CreatedAt, booking.DateTime)
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		outbox.NotifyAdmins(tx, fmt.Sprintf("%s request from %s.",
			req.ChangeOrCancel, tutee.User.FullName()))
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create request"})
	}
	outbox.Dispatch()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Change/Cancel Request successfully created!",
		"request": request,
	})
}

func GetMyRequests(c *fiber.Ctx) error {
	tuteeID := currentUserID(c)

	var requests []models.Request
	database.DB.
		Preload("NewBookingRequest").
		Preload("ChangeCancelBookingRequest.Booking").
		Where("tutee_id = ?", tuteeID).
		Order("created_at desc").
		Find(&requests)

	return c.JSON(requests)
}

func AdminGetAllRequests(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Tutee.User").
		Preload("NewBookingRequest").
		Preload("ChangeCancelBookingRequest.Booking").
		Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if requestType := c.Query("type"); requestType != "" {
		query = query.Where("request_type = ?", requestType)
	}
	switch c.Query("is_late") {
	case "Late":
		query = query.Where("is_late = ?", true)
	case "On Time":
		query = query.Where("is_late = ?", false)
	}

	var requests []models.Request
	if err := query.Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch requests"})
	}

	return c.JSON(requests)
}

func GetRequestInfo(c *fiber.Ctx) error {
	requestID := c.Params("requestId")

	var request models.Request
	if err := database.DB.
		Preload("Tutee.User").
		Preload("NewBookingRequest").
		Preload("ChangeCancelBookingRequest.Booking.Tutor.User").
		First(&request, "id = ?", requestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}

	return c.JSON(request)
}

// recomputeLateness re-derives the lateness flag from the request's reference
// date. Classification runs on every save and is idempotent for unchanged
// inputs.
func recomputeLateness(tx *gorm.DB, request *models.Request) error {
	ref := request.CreatedAt
	if request.RequestType == models.RequestTypeChangeCancel {
		var satellite models.ChangeCancelBookingRequest
		if err := tx.Preload("Booking").First(&satellite, "request_id = ?", request.ID).Error; err != nil {
			return err
		}
		ref = satellite.Booking.DateTime
	}

	request.IsLate = services.ClassifyLateness(request.CreatedAt, ref)
	return nil
}

// ApproveRequest moves a pending request to Approved. There is no transition
// back and no rejected state; rejection is deletion.
func ApproveRequest(c *fiber.Ctx) error {
	requestID := c.Params("requestId")

	var request models.Request
	if err := database.DB.Preload("Tutee.User").First(&request, "id = ?", requestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}
	if request.Status == models.RequestStatusApproved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Request is already approved"})
	}

	var outbox notifications.Outbox
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		request.Status = models.RequestStatusApproved
		if err := recomputeLateness(tx, &request); err != nil {
			return err
		}
		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		return outbox.Notify(tx, request.Tutee.User,
			fmt.Sprintf("Your %s request has been approved.", request.RequestType))
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve request"})
	}
	outbox.Dispatch()

	return c.JSON(fiber.Map{"message": "Request approved."})
}

// DeleteRequest removes a request and its satellite. Used by admins both for
// cleanup and in place of rejection.
func DeleteRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var request models.Request
	if err := database.DB.Preload("Tutee.User").First(&request, "id = ?", requestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}

	var outbox notifications.Outbox
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", request.ID).Delete(&models.NewBookingRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("request_id = ?", request.ID).Delete(&models.ChangeCancelBookingRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&request).Error; err != nil {
			return err
		}
		return outbox.Notify(tx, request.Tutee.User,
			fmt.Sprintf("Your %s request has been declined and removed.", request.RequestType))
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete request"})
	}
	outbox.Dispatch()

	return c.JSON(fiber.Map{"message": "Request deleted."})
}

func containsDuration(values []time.Duration, target time.Duration) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
