package handlers

import (
	"errors"
	"fmt"
	"time"

	config "github.com/alexvr-dev/code_tutors/configs"
	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/alexvr-dev/code_tutors/notifications"
	"github.com/alexvr-dev/code_tutors/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errBookingInvalid = errors.New("booking validation failed")

type BookingRequest struct {
	TutorID         string          `json:"tutor_id" validate:"required,uuid"`
	TuteeID         string          `json:"tutee_id" validate:"required,uuid"`
	Language        string          `json:"language" validate:"required"`
	DateTime        *time.Time      `json:"date_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
}

func newBookingValidator() *services.BookingValidator {
	return services.NewBookingValidator(config.LanguageChoices(), config.DurationChoices())
}

func (r BookingRequest) toInput(id uuid.UUID) services.BookingInput {
	tutorID, _ := uuid.Parse(r.TutorID)
	tuteeID, _ := uuid.Parse(r.TuteeID)
	return services.BookingInput{
		ID:       id,
		TutorID:  tutorID,
		TuteeID:  tuteeID,
		Language: r.Language,
		DateTime: r.DateTime,
		Duration: time.Duration(r.DurationMinutes) * time.Minute,
		Price:    r.Price,
	}
}

func existingBookingsForTutor(tx *gorm.DB, tutorID uuid.UUID, tutorName string) ([]services.ExistingBooking, error) {
	var bookings []models.Booking
	if err := tx.Where("tutor_id = ?", tutorID).Find(&bookings).Error; err != nil {
		return nil, err
	}

	existing := make([]services.ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		existing = append(existing, services.ExistingBooking{
			ID:       b.ID,
			DateTime: b.DateTime,
			Duration: b.Duration,
			Language: b.Language,
			Tutor:    tutorName,
		})
	}
	return existing, nil
}

// AdminCreateBooking validates and persists a booking. The tutor row is
// locked for the duration of the transaction so two concurrent submissions
// for the same tutor cannot both pass the overlap check.
func AdminCreateBooking(c *fiber.Ctx) error {
	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in := req.toInput(uuid.Nil)

	var tutee models.Tutee
	if err := database.DB.Preload("User").First(&tutee, "user_id = ?", in.TuteeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutee not found"})
	}

	var booking models.Booking
	var fieldErrs services.FieldErrors
	var outbox notifications.Outbox
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var tutor models.Tutor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("User").First(&tutor, "user_id = ?", in.TutorID).Error; err != nil {
			return errors.New("tutor not found")
		}

		existing, err := existingBookingsForTutor(tx, tutor.UserID, tutor.User.FullName())
		if err != nil {
			return err
		}

		fieldErrs = newBookingValidator().Validate(in, tutor.LanguagesList(), existing)
		if fieldErrs.HasErrors() {
			return errBookingInvalid
		}

		booking = models.Booking{
			DateTime: *in.DateTime,
			Duration: in.Duration,
			Language: in.Language,
			TutorID:  in.TutorID,
			TuteeID:  in.TuteeID,
			Price:    in.Price,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if err := outbox.Notify(tx, tutor.User,
			fmt.Sprintf("You have a new booking with %s.", tutee.User.FullName())); err != nil {
			return err
		}
		return outbox.Notify(tx, tutee.User,
			fmt.Sprintf("You have a new booking with %s.", tutor.User.FullName()))
	})

	if errors.Is(err, errBookingInvalid) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fieldErrs})
	}
	if err != nil {
		if err.Error() == "tutor not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}
	outbox.Dispatch()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking successfully created!",
		"booking": booking,
	})
}

// AdminUpdateBooking revalidates an edited booking, excluding the booking
// itself from the overlap check.
func AdminUpdateBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in := req.toInput(bookingID)

	var fieldErrs services.FieldErrors
	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return errors.New("booking not found")
		}

		var tutor models.Tutor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("User").First(&tutor, "user_id = ?", in.TutorID).Error; err != nil {
			return errors.New("tutor not found")
		}

		existing, err := existingBookingsForTutor(tx, tutor.UserID, tutor.User.FullName())
		if err != nil {
			return err
		}

		fieldErrs = newBookingValidator().Validate(in, tutor.LanguagesList(), existing)
		if fieldErrs.HasErrors() {
			return errBookingInvalid
		}

		booking.DateTime = *in.DateTime
		booking.Duration = in.Duration
		booking.Language = in.Language
		booking.TutorID = in.TutorID
		booking.TuteeID = in.TuteeID
		booking.Price = in.Price
		return tx.Save(&booking).Error
	})

	if errors.Is(err, errBookingInvalid) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fieldErrs})
	}
	if err != nil {
		switch err.Error() {
		case "booking not found":
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		case "tutor not found":
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	return c.JSON(fiber.Map{
		"message": "Booking successfully updated!",
		"booking": booking,
	})
}

func AdminDeleteBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.
		Preload("Tutor.User").
		Preload("Tutee.User").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var outbox notifications.Outbox
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := deleteBookingCascade(tx, &booking); err != nil {
			return err
		}

		message := fmt.Sprintf("Your booking on %s has been cancelled.", booking.DateTime.Format("2006-01-02 15:04"))
		if err := outbox.Notify(tx, booking.Tutor.User, message); err != nil {
			return err
		}
		return outbox.Notify(tx, booking.Tutee.User, message)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}
	outbox.Dispatch()

	return c.JSON(fiber.Map{"message": "Booking successfully deleted!"})
}

// deleteBookingCascade removes a booking together with the change/cancel
// requests that reference it. The parent Request rows go too, keeping every
// remaining request paired with exactly one satellite.
func deleteBookingCascade(tx *gorm.DB, booking *models.Booking) error {
	requestIDs := tx.Model(&models.ChangeCancelBookingRequest{}).
		Select("request_id").
		Where("booking_id = ?", booking.ID)
	if err := tx.Where("id IN (?)", requestIDs).Delete(&models.Request{}).Error; err != nil {
		return err
	}
	if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.ChangeCancelBookingRequest{}).Error; err != nil {
		return err
	}
	return tx.Delete(booking).Error
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Tutor.User").
		Preload("Tutee.User").
		Order("date_time")

	switch c.Query("status") {
	case "completed":
		query = query.Where("is_completed = ?", true)
	case "upcoming":
		query = query.Where("is_completed = ?", false)
	}
	if tutorID := c.Query("tutor"); tutorID != "" {
		query = query.Where("tutor_id = ?", tutorID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}

func GetMyBookings(c *fiber.Ctx) error {
	tuteeID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("Tutor.User").
		Where("tutee_id = ?", tuteeID).
		Order("date_time").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetMyTutorBookings(c *fiber.Ctx) error {
	tutorID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("Tutee.User").
		Where("tutor_id = ?", tutorID).
		Order("date_time").
		Find(&bookings)

	return c.JSON(bookings)
}

// GetMyInvoices lists a tutee's completed bookings with price and payment
// state.
func GetMyInvoices(c *fiber.Ctx) error {
	tuteeID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("Tutor.User").
		Where("tutee_id = ? AND is_completed = ?", tuteeID, true).
		Order("date_time desc").
		Find(&bookings)

	return c.JSON(bookings)
}

// MarkBookingPaid flips the paid flag on a completed booking and kicks off
// invoice generation in the background.
func MarkBookingPaid(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.
		Preload("Tutor.User").
		Preload("Tutee.User").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if !booking.IsCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only completed bookings can be marked as paid"})
	}
	if booking.IsPaid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking is already paid"})
	}

	booking.IsPaid = true
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark booking as paid"})
	}

	go services.GenerateAndStoreInvoice(booking)

	return c.JSON(fiber.Map{"message": "Booking marked as paid."})
}
