package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTermStartByMonth(t *testing.T) {
	cases := []struct {
		ref  time.Time
		want time.Time
	}{
		{date(2024, time.September, 1), date(2024, time.September, 1)},
		{date(2024, time.October, 15), date(2024, time.September, 1)},
		{date(2024, time.December, 31), date(2024, time.September, 1)},
		{date(2025, time.January, 2), date(2025, time.January, 1)},
		{date(2025, time.April, 30), date(2025, time.January, 1)},
		{date(2025, time.May, 5), date(2025, time.May, 1)},
		{date(2025, time.July, 31), date(2025, time.May, 1)},
	}

	for _, c := range cases {
		got, ok := TermStart(c.ref)
		require.True(t, ok, "reference %v should fall in a term", c.ref)
		assert.Equal(t, c.want, got, "reference %v", c.ref)
	}
}

func TestTermStartAugustHasNoTerm(t *testing.T) {
	_, ok := TermStart(date(2024, time.August, 10))
	assert.False(t, ok)
}

func TestClassifyLatenessAroundSeptemberDeadline(t *testing.T) {
	// Term start 2024-09-01, deadline 2024-08-18.
	ref := date(2024, time.September, 1)

	assert.True(t, ClassifyLateness(date(2024, time.August, 20), ref))
	assert.False(t, ClassifyLateness(date(2024, time.July, 1), ref))
}

func TestClassifyLatenessDeadlineDayIsLate(t *testing.T) {
	ref := date(2024, time.September, 1)

	assert.True(t, ClassifyLateness(date(2024, time.August, 18), ref))
	assert.False(t, ClassifyLateness(date(2024, time.August, 17), ref))
}

func TestClassifyLatenessIgnoresTimeOfDay(t *testing.T) {
	ref := date(2024, time.September, 1)
	lateEvening := time.Date(2024, time.August, 18, 23, 59, 0, 0, time.UTC)

	assert.True(t, ClassifyLateness(lateEvening, ref))
}

func TestClassifyLatenessAugustReferenceIsOnTime(t *testing.T) {
	ref := date(2024, time.August, 10)

	assert.False(t, ClassifyLateness(date(2024, time.August, 9), ref))
	assert.False(t, ClassifyLateness(date(2024, time.August, 30), ref))
}

func TestClassifyLatenessIsIdempotent(t *testing.T) {
	ref := date(2025, time.January, 15)
	created := date(2024, time.December, 30)

	first := ClassifyLateness(created, ref)
	second := ClassifyLateness(created, ref)
	assert.Equal(t, first, second)
	assert.True(t, first)
}
