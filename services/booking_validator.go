package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldErrors maps a field name to its accumulated validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return strings.Join(parts, " | ")
}

// BookingInput is a proposed booking, new or edited. ID is uuid.Nil for a new
// booking and the booking's own ID when editing, so the overlap check can
// exclude the record itself.
type BookingInput struct {
	ID       uuid.UUID
	TutorID  uuid.UUID
	TuteeID  uuid.UUID
	Language string
	DateTime *time.Time
	Duration time.Duration
	Price    decimal.Decimal
}

// EndTime is only meaningful when DateTime is set and Duration is valid.
func (in BookingInput) EndTime() time.Time {
	return in.DateTime.Add(in.Duration)
}

// ExistingBooking is the slice of a persisted booking the overlap check needs.
type ExistingBooking struct {
	ID       uuid.UUID
	DateTime time.Time
	Duration time.Duration
	Language string
	Tutor    string
}

func (b ExistingBooking) String() string {
	return fmt.Sprintf("%s : %s with %s", b.DateTime.Format("2006-01-02 15:04"), b.Language, b.Tutor)
}

// BookingValidator decides whether a proposed booking may be persisted. The
// allowed language and duration sets are injected configuration, and Now is
// injected so validation is deterministic under test.
type BookingValidator struct {
	Languages []string
	Durations []time.Duration
	Now       func() time.Time
}

func NewBookingValidator(languages []string, durations []time.Duration) *BookingValidator {
	return &BookingValidator{
		Languages: languages,
		Durations: durations,
		Now:       time.Now,
	}
}

func (v *BookingValidator) validDuration(d time.Duration) bool {
	for _, allowed := range v.Durations {
		if d == allowed {
			return true
		}
	}
	return false
}

// Validate runs every check and accumulates field errors rather than
// stopping at the first failure. tutorLanguages is the tutor's specialised
// set; existing holds the tutor's other bookings.
//
// Overlap is full interval intersection: two windows conflict when each
// starts before the other ends. Back-to-back sessions do not conflict.
func (v *BookingValidator) Validate(in BookingInput, tutorLanguages []string, existing []ExistingBooking) FieldErrors {
	errs := FieldErrors{}

	if in.DateTime == nil {
		errs.Add("date_time", "Date and time are required.")
	} else if in.DateTime.Before(v.Now()) {
		errs.Add("date_time", "The date and time cannot be in the past.")
	}

	durationValid := v.validDuration(in.Duration)
	if !durationValid {
		errs.Add("duration", "Select a valid duration.")
	}

	languageFound := false
	for _, l := range tutorLanguages {
		if l == in.Language {
			languageFound = true
			break
		}
	}
	if !languageFound {
		errs.Add("language", fmt.Sprintf(
			"This tutor cannot teach the selected language. This tutor teaches %s.",
			strings.Join(tutorLanguages, ", ")))
	}

	if !in.Price.IsPositive() {
		errs.Add("price", "The price must be positive.")
	}

	// End time is only computable with both a start and a recognised duration.
	if in.DateTime != nil && durationValid {
		endTime := in.EndTime()
		for _, other := range existing {
			if other.ID == in.ID {
				continue
			}
			if other.DateTime.Before(endTime) && other.DateTime.Add(other.Duration).After(*in.DateTime) {
				errs.Add("date_time", fmt.Sprintf("This date&time overlaps with another booking for %s.", other))
				errs.Add("duration", fmt.Sprintf("This duration overlaps with another booking for %s.", other))
			}
		}
	}

	return errs
}
