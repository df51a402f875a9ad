package response

import (
	"testing"

	"logistica_cotizaciones/internal/domain/entities"
)

func TestFromNotifications(t *testing.T) {
	resp := FromNotifications([]entities.Notification{
		{ID: "n-2", Read: false, Type: entities.NotificationTypeTransport},
		{ID: "n-1", Read: true},
		{ID: "n-0", Read: false},
	})
	if resp.Unread != 2 {
		t.Fatalf("expected 2 unread, got %d", resp.Unread)
	}
	if len(resp.Notifications) != 3 || resp.Notifications[0].ID != "n-2" || resp.Notifications[0].Type != "transporte" {
		t.Fatalf("unexpected list: %+v", resp.Notifications)
	}
}

func TestFromUser(t *testing.T) {
	u := FromUser(entities.User{ID: 1, Email: "a@b.c", Role: entities.RoleAdmin, PasswordHash: "secret"})
	if u.ID != 1 || u.Role != "admin" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
