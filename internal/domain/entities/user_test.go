package entities

import (
	"errors"
	"testing"
)

func validProfile() UserProfile {
	return UserProfile{FirstName: "Ana", LastName: "Quispe", CompanyName: "Andes SAC", Phone: "+51 999-888-777"}
}

func TestUserProfile_Validate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(p *UserProfile)
		want error
	}{
		{"valid", func(*UserProfile) {}, nil},
		{"short first name", func(p *UserProfile) { p.FirstName = " A " }, ErrInvalidName},
		{"short last name", func(p *UserProfile) { p.LastName = "" }, ErrInvalidName},
		{"accented two letters", func(p *UserProfile) { p.LastName = "Ñá" }, nil},
		{"short company", func(p *UserProfile) { p.CompanyName = "X" }, ErrInvalidCompany},
		{"phone with letters", func(p *UserProfile) { p.Phone = "call-me" }, ErrInvalidPhone},
		{"phone too short", func(p *UserProfile) { p.Phone = "12345" }, ErrInvalidPhone},
		{"phone with parentheses", func(p *UserProfile) { p.Phone = "(01) 555 1234" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mut(&p)
			if err := p.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"Segura#2026", true},
		{"Ab1!", false},
		{"segura#2026", false},
		{"SEGURA#2026", false},
		{"Segura#abcd", false},
		{"Segura2026x", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrWeakPassword) {
				t.Fatalf("expected ErrWeakPassword, got %v", err)
			}
		})
	}
}

func TestUserProfileUpdate_Validate(t *testing.T) {
	str := func(v string) *string { return &v }

	if err := (UserProfileUpdate{}).Validate(); !errors.Is(err, ErrEmptyProfileUpdate) {
		t.Fatalf("expected ErrEmptyProfileUpdate, got %v", err)
	}
	if err := (UserProfileUpdate{Phone: str("abc")}).Validate(); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
	if err := (UserProfileUpdate{CompanyName: str(" Z ")}).Validate(); !errors.Is(err, ErrInvalidCompany) {
		t.Fatalf("expected ErrInvalidCompany, got %v", err)
	}
	upd := UserProfileUpdate{FirstName: str("  Rosa ")}
	if err := upd.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := *upd.Normalized().FirstName; got != "Rosa" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}

func TestNewUser(t *testing.T) {
	u := NewUser(" Ana@Andes.PE ", "salt:hash", validProfile(), false, t0)
	if u.Email != "ana@andes.pe" || u.Role != RoleUser || u.EmailVerified || !u.CreatedAt.Equal(t0) {
		t.Fatalf("unexpected user: %+v", u)
	}
	if admin := NewUser("b@c.pe", "h", validProfile(), true, t0); !admin.EmailVerified {
		t.Fatalf("expected verified account")
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole(" Admin "); !ok || r != RoleAdmin {
		t.Fatalf("unexpected %q %v", r, ok)
	}
	if _, ok := ParseRole("root"); ok {
		t.Fatalf("expected unknown role")
	}
}
