package jobs

import (
	"log"
	"time"

	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
)

// MarkPastBookingsCompleted flips the completion flag on bookings whose start
// time has passed.
func MarkPastBookingsCompleted() {
	result := database.DB.Model(&models.Booking{}).
		Where("date_time <= ? AND is_completed = ?", time.Now(), false).
		Update("is_completed", true)

	if result.Error != nil {
		log.Printf("Error marking past bookings as completed: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d booking(s) as completed.", result.RowsAffected)
	}
}
