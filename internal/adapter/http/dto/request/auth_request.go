package request

import (
	"errors"
	"strings"

	"logistica_cotizaciones/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var errInvalidEmail = errors.New("invalid email address")

// LoginRequest is validated after trimming, so a padded address binds.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks the trimmed email format.
func (r LoginRequest) Validate() error {
	if err := validate.Var(r.NormalizedEmail(), "required,email"); err != nil {
		return errInvalidEmail
	}
	return nil
}

// RegisterRequest is a self-service sign up. Field rules are enforced by the
// use case.
type RegisterRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	CompanyName     string `json:"company_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (r RegisterRequest) ToRegistration() entities.Registration {
	return entities.Registration{
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Profile: entities.UserProfile{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			CompanyName: r.CompanyName,
			Phone:       r.Phone,
		},
	}
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required"`
}
