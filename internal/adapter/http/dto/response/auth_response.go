package response

import (
	"time"

	"logistica_cotizaciones/internal/domain/entities"
)

type UserResponse struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone,omitempty"`
	CompanyName   string    `json:"company_name,omitempty"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// RegisterResponse acknowledges a sign up. The account stays locked until the
// emailed link is followed.
type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		CompanyName:   u.CompanyName,
		Role:          string(u.Role),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

func NewLoginResponse(token string, expiresAt time.Time, u entities.User) LoginResponse {
	return LoginResponse{Token: token, ExpiresAt: expiresAt, User: FromUser(u)}
}
