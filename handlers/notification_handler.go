package handlers

import (
	"fmt"
	"log"

	config "github.com/alexvr-dev/code_tutors/configs"
	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/alexvr-dev/code_tutors/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GetInbox returns the user's notifications and inquiries. Viewing the
// notifications tab marks them read, mirroring how the inbox screen behaves.
func GetInbox(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var notificationRecords []models.Notification
	database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notificationRecords)

	var inquiries []models.Inquiry
	database.DB.
		Preload("Sender").
		Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at desc").
		Find(&inquiries)

	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)

	return c.JSON(fiber.Map{
		"notifications": notificationRecords,
		"inquiries":     inquiries,
	})
}

func UnreadNotificationsCount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var count int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)

	return c.JSON(fiber.Map{"unread_count": count})
}

func MarkNotificationsAsRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)

	return c.JSON(fiber.Map{"message": "Notifications marked as read."})
}

func DeleteNotification(c *fiber.Ctx) error {
	userID := currentUserID(c)
	notificationID := c.Params("notificationId")

	var notification models.Notification
	if err := database.DB.
		Where("id = ? AND user_id = ?", notificationID, userID).
		First(&notification).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}

	if err := database.DB.Delete(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete notification"})
	}

	return c.JSON(fiber.Map{"message": "Notification deleted."})
}

// ServeWs upgrades the connection and registers the user with the
// notification hub after an auth handshake message carrying their JWT.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	// The connection is push-only; we read just to detect closure.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
