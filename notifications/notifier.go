package notifications

import (
	"fmt"
	"log"

	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/alexvr-dev/code_tutors/websocket"
	"gorm.io/gorm"
)

type delivery struct {
	notification models.Notification
	toName       string
	toEmail      string
}

// Outbox collects notifications created inside a transaction and holds their
// websocket push and email mirror until Dispatch. Callers dispatch only after
// the transaction commits, so a rolled-back write never leaks a notification.
type Outbox struct {
	queued []delivery
}

// Notify records an in-app notification for the user and queues its delivery.
// Pass tx to create the record inside an open transaction; pass nil to use
// the shared connection.
func (o *Outbox) Notify(tx *gorm.DB, user models.User, message string) error {
	db := tx
	if db == nil {
		db = database.DB
	}

	notification := models.Notification{
		UserID:  user.ID,
		Message: message,
	}
	if err := db.Create(&notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	o.queued = append(o.queued, delivery{
		notification: notification,
		toName:       user.FullName(),
		toEmail:      user.Email,
	})
	return nil
}

// NotifyAdmins records the message for every staff user and queues the
// deliveries.
func (o *Outbox) NotifyAdmins(tx *gorm.DB, message string) {
	db := tx
	if db == nil {
		db = database.DB
	}

	var admins []models.User
	if err := db.Where("is_staff = ?", true).Find(&admins).Error; err != nil {
		log.Printf("Error fetching admins for notification: %v", err)
		return
	}

	for _, admin := range admins {
		if err := o.Notify(db, admin, message); err != nil {
			log.Printf("Error notifying admin %s: %v", admin.ID, err)
		}
	}
}

// Dispatch pushes each queued notification to its recipient's websocket
// connection if they are online and mirrors it to email when the email
// service is configured.
func (o *Outbox) Dispatch() {
	for i := range o.queued {
		d := o.queued[i]
		select {
		case websocket.Push <- &d.notification:
		default:
			// Hub busy or not running; the inbox will pick it up on next load.
		}

		go SendEmail(d.toName, d.toEmail, "Code Tutors Notification",
			fmt.Sprintf("<p>%s</p>", d.notification.Message))
	}
	o.queued = nil
}

// Notify records and immediately delivers a single notification. For callers
// outside any transaction, such as the cron jobs.
func Notify(db *gorm.DB, user models.User, message string) error {
	var outbox Outbox
	if err := outbox.Notify(db, user, message); err != nil {
		return err
	}
	outbox.Dispatch()
	return nil
}
