package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestTypeNewBooking   = "New Booking"
	RequestTypeChangeCancel = "Change/Cancel"

	RequestStatusPending  = "Pending"
	RequestStatusApproved = "Approved"

	ActionChange = "Change"
	ActionCancel = "Cancel"
)

// Request is a tutee-initiated action routed through admin approval. Exactly
// one satellite record is attached, determined by RequestType.
type Request struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TuteeID     uuid.UUID `gorm:"type:uuid;not null" json:"tutee_id"`
	RequestType string    `gorm:"size:15;not null" json:"request_type"`
	Status      string    `gorm:"size:10;not null;default:'Pending'" json:"status"`
	IsLate      bool      `gorm:"default:false" json:"is_late"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Tutee Tutee `gorm:"foreignkey:TuteeID;constraint:OnDelete:CASCADE" json:"tutee,omitempty"`

	NewBookingRequest          *NewBookingRequest          `gorm:"foreignkey:RequestID;constraint:OnDelete:CASCADE" json:"new_booking_request,omitempty"`
	ChangeCancelBookingRequest *ChangeCancelBookingRequest `gorm:"foreignkey:RequestID;constraint:OnDelete:CASCADE" json:"change_cancel_booking_request,omitempty"`
}

// Timeliness renders the lateness flag the way the admin screens show it.
func (r Request) Timeliness() string {
	if r.IsLate {
		return "Delayed"
	}
	return "On Time"
}

type NewBookingRequest struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID uuid.UUID     `gorm:"type:uuid;not null;unique" json:"request_id"`
	Frequency string        `gorm:"size:15;not null;default:'One-time'" json:"frequency"`
	Duration  time.Duration `gorm:"not null" json:"duration"`
	Language  string        `gorm:"size:20;not null" json:"language"`
	Details   string        `gorm:"type:text" json:"details"`
}

type ChangeCancelBookingRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID      uuid.UUID `gorm:"type:uuid;not null;unique" json:"request_id"`
	ChangeOrCancel string    `gorm:"size:8;not null;default:'Cancel'" json:"change_or_cancel"`
	BookingID      uuid.UUID `gorm:"type:uuid;not null" json:"booking_id"`
	Details        string    `gorm:"type:text" json:"details"`

	Booking Booking `gorm:"foreignkey:BookingID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`
}
