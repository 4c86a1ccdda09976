package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

var defaultLanguages = []string{"C++", "Python", "Java", "JavaScript", "R", "SQL"}

var defaultDurationMinutes = []int{30, 60, 90, 120, 150, 180}

var defaultFrequencies = []string{"One-time", "Weekly", "Bi-weekly", "Monthly"}

// LanguageChoices returns the languages bookings can be made for. The set is
// configurable via LANGUAGE_CHOICES as a comma-separated list.
func LanguageChoices() []string {
	return listFromEnv("LANGUAGE_CHOICES", defaultLanguages)
}

// DurationChoices returns the allowed session durations. Configurable via
// DURATION_CHOICES_MINUTES as a comma-separated list of minutes.
func DurationChoices() []time.Duration {
	raw := Config("DURATION_CHOICES_MINUTES")
	minutes := defaultDurationMinutes
	if raw != "" {
		parsed := []int{}
		for _, part := range strings.Split(raw, ",") {
			m, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || m <= 0 {
				log.Printf("Ignoring invalid duration choice %q", part)
				continue
			}
			parsed = append(parsed, m)
		}
		if len(parsed) > 0 {
			minutes = parsed
		}
	}

	durations := make([]time.Duration, 0, len(minutes))
	for _, m := range minutes {
		durations = append(durations, time.Duration(m)*time.Minute)
	}
	return durations
}

// FrequencyChoices returns how often a requested booking may recur.
func FrequencyChoices() []string {
	return listFromEnv("FREQUENCY_CHOICES", defaultFrequencies)
}

func listFromEnv(key string, fallback []string) []string {
	raw := Config(key)
	if raw == "" {
		return fallback
	}

	values := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
