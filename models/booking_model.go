package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID       uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DateTime time.Time     `gorm:"not null" json:"date_time"`
	Duration time.Duration `gorm:"not null" json:"duration"`
	Language string        `gorm:"size:20;not null" json:"language"`

	TutorID uuid.UUID `gorm:"type:uuid;not null" json:"tutor_id"`
	TuteeID uuid.UUID `gorm:"type:uuid;not null" json:"tutee_id"`

	IsCompleted bool            `gorm:"default:false" json:"is_completed"`
	IsPaid      bool            `gorm:"default:false" json:"is_paid"`
	Price       decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`

	InvoiceURL *string `gorm:"size:255" json:"invoice_url,omitempty"`

	Tutor Tutor `gorm:"foreignkey:TutorID;constraint:OnDelete:CASCADE" json:"tutor,omitempty"`
	Tutee Tutee `gorm:"foreignkey:TuteeID;constraint:OnDelete:CASCADE" json:"tutee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EndTime returns the instant the session finishes.
func (b Booking) EndTime() time.Time {
	return b.DateTime.Add(b.Duration)
}

func (b Booking) String() string {
	return fmt.Sprintf("%s : %s with %s", b.DateTime.Format("2006-01-02 15:04"), b.Language, b.Tutor.User.FullName())
}
