package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURLNormalizesEmail(t *testing.T) {
	plain := GravatarURL("jane.doe@example.org", 120)
	shouty := GravatarURL("  Jane.Doe@Example.org ", 120)

	assert.Equal(t, plain, shouty)
	assert.Contains(t, plain, "s=120")
	assert.Contains(t, plain, "d=mp")
}

func TestMiniGravatarURL(t *testing.T) {
	assert.Contains(t, MiniGravatarURL("jane.doe@example.org"), "s=60")
}
