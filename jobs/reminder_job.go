package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/alexvr-dev/code_tutors/notifications"
)

// SendSessionReminders notifies both parties about sessions starting in
// roughly one hour. The window matches the five-minute cron cadence so each
// booking is picked up once.
func SendSessionReminders() {
	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking
	err := database.DB.
		Preload("Tutor.User").
		Preload("Tutee.User").
		Where("is_completed = ? AND date_time BETWEEN ? AND ?", false, lowerBound, upperBound).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	for _, booking := range upcomingBookings {
		message := fmt.Sprintf("Reminder: your %s session starts at %s.",
			booking.Language, booking.DateTime.Format(time.Kitchen))

		if err := notifications.Notify(nil, booking.Tutor.User, message); err != nil {
			log.Printf("Error sending reminder for booking %s: %v", booking.ID, err)
		}
		if err := notifications.Notify(nil, booking.Tutee.User, message); err != nil {
			log.Printf("Error sending reminder for booking %s: %v", booking.ID, err)
		}
	}
}
