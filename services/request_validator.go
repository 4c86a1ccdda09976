package services

import (
	"strings"

	"github.com/alexvr-dev/code_tutors/models"
	"github.com/google/uuid"
)

// ValidateChangeCancel applies the rules for a tutee's change/cancel request:
// the action must be a known one, a change must carry details, and the target
// booking must belong to the requesting tutee and not be completed yet.
// Errors accumulate per field like booking validation does.
func ValidateChangeCancel(action, details string, booking models.Booking, tuteeID uuid.UUID) FieldErrors {
	errs := FieldErrors{}

	switch action {
	case models.ActionChange:
		if strings.TrimSpace(details) == "" {
			errs.Add("details", "Please provide details for a change request.")
		}
	case models.ActionCancel:
	default:
		errs.Add("change_or_cancel", "Select a valid action.")
	}

	if booking.TuteeID != tuteeID {
		errs.Add("booking", "You can only request changes to your own bookings.")
	}
	if booking.IsCompleted {
		errs.Add("booking", "Completed bookings cannot be changed or cancelled.")
	}

	return errs
}
