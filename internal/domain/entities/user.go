package entities

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// VerificationTTL is how long an email verification token stays valid.
const VerificationTTL = 24 * time.Hour

const (
	minNameLength     = 2
	minPasswordLength = 8
	passwordSymbols   = `!@#$%^&*(),.?":{}|<>`
)

var phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]{7,}$`)

// ParseRole normalizes a role filter value.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch r {
	case RoleAdmin, RoleUser, RoleInactive:
		return r, true
	}
	return r, false
}

// EmailVerification is an outstanding verification token of an unverified
// account.
type EmailVerification struct {
	Token     string
	ExpiresAt time.Time
}

// UserProfile is the contact data an account is created with.
type UserProfile struct {
	FirstName   string
	LastName    string
	CompanyName string
	Phone       string
}

func (p UserProfile) Normalized() UserProfile {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.Phone = strings.TrimSpace(p.Phone)
	return p
}

func (p UserProfile) Validate() error {
	n := p.Normalized()
	if !longEnough(n.FirstName) || !longEnough(n.LastName) {
		return ErrInvalidName
	}
	if !longEnough(n.CompanyName) {
		return ErrInvalidCompany
	}
	if !phonePattern.MatchString(n.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// NewUser builds an unsaved account. Admin-created accounts skip email
// verification.
func NewUser(email, passwordHash string, profile UserProfile, verified bool, now time.Time) User {
	p := profile.Normalized()
	return User{
		Email:         strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:  passwordHash,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		CompanyName:   p.CompanyName,
		Phone:         p.Phone,
		Role:          RoleUser,
		EmailVerified: verified,
		CreatedAt:     now,
	}
}

// Registration is a self-service sign up.
type Registration struct {
	Email           string
	Password        string
	ConfirmPassword string
	Profile         UserProfile
}

// NewAccount is an account opened by an admin. It starts verified.
type NewAccount struct {
	Email    string
	Password string
	Profile  UserProfile
}

// UserProfileUpdate is a partial profile edit. Nil fields are left as they
// are.
type UserProfileUpdate struct {
	FirstName   *string
	LastName    *string
	CompanyName *string
	Phone       *string
}

func (u UserProfileUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.CompanyName == nil && u.Phone == nil
}

func (u UserProfileUpdate) Normalized() UserProfileUpdate {
	return UserProfileUpdate{
		FirstName:   trimmedPtr(u.FirstName),
		LastName:    trimmedPtr(u.LastName),
		CompanyName: trimmedPtr(u.CompanyName),
		Phone:       trimmedPtr(u.Phone),
	}
}

func (u UserProfileUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyProfileUpdate
	}
	n := u.Normalized()
	if (n.FirstName != nil && !longEnough(*n.FirstName)) || (n.LastName != nil && !longEnough(*n.LastName)) {
		return ErrInvalidName
	}
	if n.CompanyName != nil && !longEnough(*n.CompanyName) {
		return ErrInvalidCompany
	}
	if n.Phone != nil && !phonePattern.MatchString(*n.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// UserFilter narrows the admin user listing. Search matches email, first or
// last name.
type UserFilter struct {
	Search string
	Role   Role
}

// ValidatePassword enforces the password policy: eight characters with an
// upper case letter, a lower case letter, a digit and a symbol.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrWeakPassword
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}

func longEnough(v string) bool {
	return utf8.RuneCountInString(v) >= minNameLength
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
