package services

import (
	"testing"
	"time"

	"github.com/alexvr-dev/code_tutors/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upcomingBooking(tuteeID uuid.UUID) models.Booking {
	return models.Booking{
		ID:       uuid.New(),
		DateTime: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		Duration: 60 * time.Minute,
		Language: "Python",
		TutorID:  uuid.New(),
		TuteeID:  tuteeID,
	}
}

func TestValidateChangeCancelRequiresDetailsForChange(t *testing.T) {
	tuteeID := uuid.New()
	booking := upcomingBooking(tuteeID)

	errs := ValidateChangeCancel(models.ActionChange, "", booking, tuteeID)
	require.Contains(t, errs, "details")
	assert.Equal(t, []string{"Please provide details for a change request."}, errs["details"])

	errs = ValidateChangeCancel(models.ActionChange, "   ", booking, tuteeID)
	assert.Contains(t, errs, "details", "whitespace-only details should be rejected")
}

func TestValidateChangeCancelAcceptsChangeWithDetails(t *testing.T) {
	tuteeID := uuid.New()
	booking := upcomingBooking(tuteeID)

	errs := ValidateChangeCancel(models.ActionChange, "reschedule please", booking, tuteeID)
	assert.False(t, errs.HasErrors(), "expected no errors, got %v", errs)
}

func TestValidateChangeCancelAcceptsCancelWithoutDetails(t *testing.T) {
	tuteeID := uuid.New()
	booking := upcomingBooking(tuteeID)

	errs := ValidateChangeCancel(models.ActionCancel, "", booking, tuteeID)
	assert.False(t, errs.HasErrors(), "expected no errors, got %v", errs)
}

func TestValidateChangeCancelRejectsForeignBooking(t *testing.T) {
	booking := upcomingBooking(uuid.New())

	errs := ValidateChangeCancel(models.ActionCancel, "", booking, uuid.New())
	require.Contains(t, errs, "booking")
	assert.Equal(t, []string{"You can only request changes to your own bookings."}, errs["booking"])
}

func TestValidateChangeCancelRejectsCompletedBooking(t *testing.T) {
	tuteeID := uuid.New()
	booking := upcomingBooking(tuteeID)
	booking.IsCompleted = true

	errs := ValidateChangeCancel(models.ActionCancel, "", booking, tuteeID)
	require.Contains(t, errs, "booking")
	assert.Equal(t, []string{"Completed bookings cannot be changed or cancelled."}, errs["booking"])
}

func TestValidateChangeCancelRejectsUnknownAction(t *testing.T) {
	tuteeID := uuid.New()
	booking := upcomingBooking(tuteeID)

	errs := ValidateChangeCancel("Postpone", "", booking, tuteeID)
	assert.Contains(t, errs, "change_or_cancel")
}

func TestValidateChangeCancelAccumulatesAcrossFields(t *testing.T) {
	booking := upcomingBooking(uuid.New())
	booking.IsCompleted = true

	errs := ValidateChangeCancel(models.ActionChange, "", booking, uuid.New())
	assert.Contains(t, errs, "details")
	require.Contains(t, errs, "booking")
	assert.Len(t, errs["booking"], 2, "ownership and completion errors should both accumulate")
}
