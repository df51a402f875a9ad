package response

import (
	"time"

	"logistica_cotizaciones/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}

type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// FromNotifications keeps the input order and counts unread entries.
func FromNotifications(list []entities.Notification) NotificationListResponse {
	resp := NotificationListResponse{Notifications: make([]NotificationResponse, 0, len(list))}
	for _, n := range list {
		if !n.Read {
			resp.Unread++
		}
		resp.Notifications = append(resp.Notifications, FromNotification(n))
	}
	return resp
}
