package notifications

import (
	"testing"
	"time"

	"github.com/alexvr-dev/code_tutors/models"
	"github.com/alexvr-dev/code_tutors/websocket"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOutboxDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE notifications (
		id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		user_id TEXT, message TEXT, is_read BOOLEAN DEFAULT FALSE, created_at DATETIME)`).Error)
	return db
}

func outboxTestUser() models.User {
	return models.User{
		ID:        uuid.New(),
		Username:  "@janedoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.org",
	}
}

func TestOutboxHoldsDeliveryUntilDispatch(t *testing.T) {
	db := newOutboxDB(t)
	user := outboxTestUser()

	var outbox Outbox
	tx := db.Begin()
	require.NoError(t, tx.Error)
	require.NoError(t, outbox.Notify(tx, user, "You have a new booking with Charlie Johnson."))

	select {
	case n := <-websocket.Push:
		t.Fatalf("notification %q pushed before dispatch", n.Message)
	default:
	}
	require.Len(t, outbox.queued, 1)
	require.NoError(t, tx.Commit().Error)

	received := make(chan *models.Notification, 1)
	go func() { received <- <-websocket.Push }()
	// let the receiver block before the non-blocking push
	time.Sleep(10 * time.Millisecond)
	outbox.Dispatch()

	select {
	case n := <-received:
		assert.Equal(t, user.ID, n.UserID)
		assert.Equal(t, "You have a new booking with Charlie Johnson.", n.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a websocket push after dispatch")
	}
	assert.Empty(t, outbox.queued)
}

func TestOutboxRollbackLeavesNoNotification(t *testing.T) {
	db := newOutboxDB(t)
	user := outboxTestUser()

	var outbox Outbox
	tx := db.Begin()
	require.NoError(t, tx.Error)
	require.NoError(t, outbox.Notify(tx, user, "Cancel request from Jane Doe."))
	require.NoError(t, tx.Rollback().Error)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count, "rolled-back notification must not persist")

	select {
	case n := <-websocket.Push:
		t.Fatalf("notification %q pushed despite rollback", n.Message)
	default:
	}
}
