package services

import "time"

// latenessBuffer is how far before term start a request must arrive to count
// as on time.
const latenessBuffer = 14 * 24 * time.Hour

// TermStart returns the start date of the academic term the reference date
// falls in. The year has three terms: September-December, January-April and
// May-July. August sits between terms, so ok is false for it.
func TermStart(ref time.Time) (time.Time, bool) {
	var month time.Month
	switch ref.Month() {
	case time.September, time.October, time.November, time.December:
		month = time.September
	case time.January, time.February, time.March, time.April:
		month = time.January
	case time.May, time.June, time.July:
		month = time.May
	default:
		return time.Time{}, false
	}
	return time.Date(ref.Year(), month, 1, 0, 0, 0, 0, ref.Location()), true
}

// ClassifyLateness reports whether a request created at createdAt is late
// relative to the term its reference date falls in. The reference date is the
// target booking's date for a change/cancel request, otherwise the request's
// own creation date. A request is late when its creation date is on or after
// term start minus two weeks. With no term (August reference) there is no
// deadline, so the request is on time.
func ClassifyLateness(createdAt, ref time.Time) bool {
	termStart, ok := TermStart(ref)
	if !ok {
		return false
	}

	deadline := termStart.Add(-latenessBuffer)
	created := truncateToDate(createdAt)
	return !created.Before(truncateToDate(deadline))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
