package request

import (
	"testing"

	"logistica_cotizaciones/internal/domain/entities"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{" Ana@Example.com ", true},
		{"ana@example.com", true},
		{"nope", false},
		{"   ", false},
		{"a@", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := LoginRequest{Email: tt.email, Password: "x"}.Validate()
			if tt.ok != (err == nil) {
				t.Fatalf("email %q: expected ok=%v, got %v", tt.email, tt.ok, err)
			}
		})
	}

	if got := (LoginRequest{Email: " Ana@Example.com "}).NormalizedEmail(); got != "ana@example.com" {
		t.Fatalf("unexpected normalized email %q", got)
	}
}

func TestRegisterRequest_ToRegistration(t *testing.T) {
	r := RegisterRequest{
		FirstName: "Ana", LastName: "Quispe", CompanyName: "Andes SAC", Phone: "+51 999",
		Email: "ana@andes.pe", Password: "Segura#2026", ConfirmPassword: "Segura#2027",
	}
	got := r.ToRegistration()
	want := entities.Registration{
		Email: "ana@andes.pe", Password: "Segura#2026", ConfirmPassword: "Segura#2027",
		Profile: entities.UserProfile{FirstName: "Ana", LastName: "Quispe", CompanyName: "Andes SAC", Phone: "+51 999"},
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestUserListQuery_ToFilter(t *testing.T) {
	tests := []struct {
		query UserListQuery
		want  entities.UserFilter
	}{
		{UserListQuery{}, entities.UserFilter{}},
		{UserListQuery{Role: "ALL"}, entities.UserFilter{}},
		{UserListQuery{Search: " mamani ", Role: " inactivo "}, entities.UserFilter{Search: "mamani", Role: entities.RoleInactive}},
	}
	for _, tt := range tests {
		if got := tt.query.ToFilter(); got != tt.want {
			t.Fatalf("%+v: expected %+v, got %+v", tt.query, tt.want, got)
		}
	}
}

func TestUpdateUserRequest_ToUpdate(t *testing.T) {
	phone := "051 365 000"
	upd := UpdateUserRequest{Phone: &phone}.ToUpdate()
	if upd.Phone != &phone || upd.FirstName != nil || upd.LastName != nil || upd.CompanyName != nil {
		t.Fatalf("unexpected update: %+v", upd)
	}
}
