package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestTimeliness(t *testing.T) {
	assert.Equal(t, "On Time", Request{}.Timeliness())
	assert.Equal(t, "Delayed", Request{IsLate: true}.Timeliness())
}

func TestBookingEndTime(t *testing.T) {
	booking := Booking{
		DateTime: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		Duration: 90 * time.Minute,
	}
	assert.Equal(t, time.Date(2025, 1, 10, 11, 30, 0, 0, time.UTC), booking.EndTime())
}

func TestUserRole(t *testing.T) {
	assert.Equal(t, "admin", User{IsStaff: true}.Role())
	assert.Equal(t, "tutor", User{IsTutor: true}.Role())
	assert.Equal(t, "tutee", User{}.Role())
}

func TestUserFullName(t *testing.T) {
	user := User{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", user.FullName())
}

func TestBookingString(t *testing.T) {
	booking := Booking{
		DateTime: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		Duration: 60 * time.Minute,
		Language: "Python",
		Tutor: Tutor{
			User: User{FirstName: "Jane", LastName: "Doe"},
		},
	}
	assert.Equal(t, "2025-01-10 10:00 : Python with Jane Doe", booking.String())
}
