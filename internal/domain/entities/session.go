package entities

import "time"

// Role is the users.role column.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "usuario"
	RoleInactive Role = "inactivo"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 7 * 24 * time.Hour

// User is an account row. PasswordHash never leaves the persistence and auth
// layers.
type User struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone,omitempty"`
	CompanyName   string    `json:"company_name,omitempty"`
	Role          Role      `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u User) IsActive() bool {
	return u.Role != RoleInactive
}

// Session is an opaque bearer token bound to a user agent. Email and Role
// are joined from users when the session is read.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Actor projects the session onto the caller identity.
func (s Session) Actor() Actor {
	return Actor{UserID: s.UserID, Role: s.Role, Email: s.Email}
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID int64  `json:"id"`
	Role   Role   `json:"role"`
	Email  string `json:"email"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
