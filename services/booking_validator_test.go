package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testLanguages = []string{"C++", "Python", "Java", "JavaScript", "R", "SQL"}
	testDurations = []time.Duration{
		30 * time.Minute, 60 * time.Minute, 90 * time.Minute,
		120 * time.Minute, 150 * time.Minute, 180 * time.Minute,
	}
)

func testValidator(now time.Time) *BookingValidator {
	v := NewBookingValidator(testLanguages, testDurations)
	v.Now = func() time.Time { return now }
	return v
}

func validInput(start time.Time) BookingInput {
	return BookingInput{
		TutorID:  uuid.New(),
		TuteeID:  uuid.New(),
		Language: "Python",
		DateTime: &start,
		Duration: 60 * time.Minute,
		Price:    decimal.NewFromFloat(25.50),
	}
}

func TestValidateAcceptsValidBooking(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	errs := testValidator(now).Validate(validInput(start), []string{"Python", "Java"}, nil)
	assert.False(t, errs.HasErrors(), "expected no errors, got %v", errs)
}

func TestValidateAcceptsEveryAllowedDuration(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	for _, d := range testDurations {
		in := validInput(start)
		in.Duration = d
		errs := testValidator(now).Validate(in, []string{"Python"}, nil)
		assert.False(t, errs.HasErrors(), "duration %v should be accepted, got %v", d, errs)
	}
}

func TestValidateRejectsOffGridDurations(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	for _, d := range []time.Duration{0, -30 * time.Minute, 45 * time.Minute, 200 * time.Minute} {
		in := validInput(start)
		in.Duration = d
		errs := testValidator(now).Validate(in, []string{"Python"}, nil)
		assert.Contains(t, errs, "duration", "duration %v should be rejected", d)
	}
}

func TestValidateRequiresDateTime(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	in := validInput(now)
	in.DateTime = nil
	errs := testValidator(now).Validate(in, []string{"Python"}, nil)

	require.Contains(t, errs, "date_time")
	assert.Equal(t, []string{"Date and time are required."}, errs["date_time"])
}

func TestValidateRejectsPastDateTime(t *testing.T) {
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	start := now.Add(-time.Minute)

	errs := testValidator(now).Validate(validInput(start), []string{"Python"}, nil)
	require.Contains(t, errs, "date_time")
	assert.Equal(t, []string{"The date and time cannot be in the past."}, errs["date_time"])
}

func TestValidateLanguageMismatchNamesTutorSet(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	in := validInput(start)
	in.Language = "SQL"
	errs := testValidator(now).Validate(in, []string{"Python", "Java"}, nil)

	require.Contains(t, errs, "language")
	assert.Contains(t, errs["language"][0], "Python, Java")
}

func TestValidatePricePositivity(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	in := validInput(start)
	in.Price = decimal.Zero
	errs := testValidator(now).Validate(in, []string{"Python"}, nil)
	require.Contains(t, errs, "price")
	assert.Equal(t, []string{"The price must be positive."}, errs["price"])

	in.Price = decimal.NewFromFloat(-1)
	errs = testValidator(now).Validate(in, []string{"Python"}, nil)
	assert.Contains(t, errs, "price")

	in.Price = decimal.NewFromFloat(0.01)
	errs = testValidator(now).Validate(in, []string{"Python"}, nil)
	assert.False(t, errs.HasErrors(), "0.01 should be accepted, got %v", errs)
}

func TestValidateRejectsOverlappingBooking(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 30, 0, 0, time.UTC)

	existing := []ExistingBooking{{
		ID:       uuid.New(),
		DateTime: time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC),
		Duration: 60 * time.Minute,
		Language: "Python",
		Tutor:    "Jane Doe",
	}}

	errs := testValidator(now).Validate(validInput(start), []string{"Python"}, existing)
	require.Contains(t, errs, "date_time")
	require.Contains(t, errs, "duration")
	assert.Contains(t, errs["date_time"][0], "overlaps with another booking")
	assert.Contains(t, errs["date_time"][0], "Jane Doe")
}

// Overlap is symmetric interval intersection: a conflict is flagged whether
// the existing booking starts inside the proposed window or the proposed
// booking starts inside the existing one. This pins the policy so a revert
// to the one-sided predicate would be a deliberate change.
func TestValidateOverlapIsSymmetric(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	existing := []ExistingBooking{{
		ID:       uuid.New(),
		DateTime: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		Duration: 60 * time.Minute,
		Language: "Python",
		Tutor:    "Jane Doe",
	}}

	// Existing 10:00-11:00, proposed 10:30-11:30: proposed starts inside
	// the existing window.
	later := validInput(time.Date(2025, 1, 10, 10, 30, 0, 0, time.UTC))
	errs := testValidator(now).Validate(later, []string{"Python"}, existing)
	assert.Contains(t, errs, "date_time")
	assert.Contains(t, errs, "duration")

	// Proposed 9:30-10:30: existing starts inside the proposed window.
	earlier := validInput(time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC))
	errs = testValidator(now).Validate(earlier, []string{"Python"}, existing)
	assert.Contains(t, errs, "date_time")

	// Proposed window fully inside a longer existing booking.
	inside := validInput(time.Date(2025, 1, 10, 10, 15, 0, 0, time.UTC))
	inside.Duration = 30 * time.Minute
	errs = testValidator(now).Validate(inside, []string{"Python"}, existing)
	assert.Contains(t, errs, "date_time")
}

func TestValidateBackToBackBookingsDoNotOverlap(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	existing := []ExistingBooking{{
		ID:       uuid.New(),
		DateTime: time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC),
		Duration: 60 * time.Minute,
	}}

	errs := testValidator(now).Validate(validInput(start), []string{"Python"}, existing)
	assert.False(t, errs.HasErrors(), "a booking ending exactly at the next start should pass, got %v", errs)
}

func TestValidateExcludesBookingUnderEdit(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	id := uuid.New()
	in := validInput(start)
	in.ID = id

	existing := []ExistingBooking{{ID: id, DateTime: start, Duration: 60 * time.Minute}}
	errs := testValidator(now).Validate(in, []string{"Python"}, existing)
	assert.False(t, errs.HasErrors(), "editing a booking must not conflict with itself, got %v", errs)
}

func TestValidateAccumulatesErrorsAcrossFields(t *testing.T) {
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	in := BookingInput{
		Language: "SQL",
		DateTime: &past,
		Duration: 45 * time.Minute,
		Price:    decimal.Zero,
	}

	errs := testValidator(now).Validate(in, []string{"Python", "Java"}, nil)
	assert.Contains(t, errs, "date_time")
	assert.Contains(t, errs, "duration")
	assert.Contains(t, errs, "language")
	assert.Contains(t, errs, "price")
}

func TestValidateMissingDateTimeSkipsOverlap(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	in := validInput(now)
	in.DateTime = nil

	existing := []ExistingBooking{{
		ID:       uuid.New(),
		DateTime: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		Duration: 60 * time.Minute,
	}}

	errs := testValidator(now).Validate(in, []string{"Python"}, existing)
	assert.Equal(t, []string{"Date and time are required."}, errs["date_time"])
	assert.NotContains(t, errs, "duration")
}
