package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLanguageChoicesDefaults(t *testing.T) {
	t.Setenv("LANGUAGE_CHOICES", "")
	assert.Equal(t, []string{"C++", "Python", "Java", "JavaScript", "R", "SQL"}, LanguageChoices())
}

func TestLanguageChoicesFromEnv(t *testing.T) {
	t.Setenv("LANGUAGE_CHOICES", "Go, Rust ,Python")
	assert.Equal(t, []string{"Go", "Rust", "Python"}, LanguageChoices())
}

func TestDurationChoicesDefaults(t *testing.T) {
	t.Setenv("DURATION_CHOICES_MINUTES", "")
	assert.Equal(t, []time.Duration{
		30 * time.Minute, 60 * time.Minute, 90 * time.Minute,
		120 * time.Minute, 150 * time.Minute, 180 * time.Minute,
	}, DurationChoices())
}

func TestDurationChoicesSkipsInvalidEntries(t *testing.T) {
	t.Setenv("DURATION_CHOICES_MINUTES", "45,abc,-30,90")
	assert.Equal(t, []time.Duration{45 * time.Minute, 90 * time.Minute}, DurationChoices())
}

func TestFrequencyChoicesDefaults(t *testing.T) {
	t.Setenv("FREQUENCY_CHOICES", "")
	assert.Equal(t, []string{"One-time", "Weekly", "Bi-weekly", "Monthly"}, FrequencyChoices())
}
