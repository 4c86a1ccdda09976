package models

import (
	"strings"

	"github.com/google/uuid"
)

type Tutor struct {
	UserID uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`

	// Comma-separated list of specialised languages, e.g. "Python, Java".
	LanguagesSpecialised string `gorm:"size:200;not null" json:"languages_specialised"`

	User User `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}

// LanguagesList splits the stored languages into a slice.
func (t Tutor) LanguagesList() []string {
	if t.LanguagesSpecialised == "" {
		return []string{}
	}

	parts := strings.Split(t.LanguagesSpecialised, ",")
	languages := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			languages = append(languages, trimmed)
		}
	}
	return languages
}

// Teaches reports whether the tutor specialises in the given language.
func (t Tutor) Teaches(language string) bool {
	for _, l := range t.LanguagesList() {
		if l == language {
			return true
		}
	}
	return false
}
