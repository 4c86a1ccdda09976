package models

import "github.com/google/uuid"

type Tutee struct {
	UserID uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`

	User User `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}
