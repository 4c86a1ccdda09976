package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InquiryStatusPending   = "Pending"
	InquiryStatusResponded = "Responded"
)

type Inquiry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null" json:"recipient_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Response    *string   `gorm:"type:text" json:"response,omitempty"`
	Status      string    `gorm:"size:10;not null;default:'Pending'" json:"status"`

	Sender    User `gorm:"foreignkey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Recipient User `gorm:"foreignkey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
