package response

import (
	"testing"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
)

func TestFromUsers(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := FromUsers([]entities.User{
		{ID: 2, Email: "b@andes.pe", Role: entities.RoleInactive, EmailVerified: true, CreatedAt: created},
		{ID: 1, Email: "a@andes.pe", Role: entities.RoleUser},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	if got[0].Role != "inactivo" || !got[0].EmailVerified || !got[0].CreatedAt.Equal(created) {
		t.Fatalf("unexpected first user: %+v", got[0])
	}
	if got[1].EmailVerified {
		t.Fatalf("expected unverified second user")
	}

	if empty := FromUsers(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
