package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL builds the avatar URL for an email address, falling back to the
// "mystery person" image for addresses without a gravatar.
func GravatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}

// MiniGravatarURL returns the small avatar used in listings.
func MiniGravatarURL(email string) string {
	return GravatarURL(email, 60)
}
