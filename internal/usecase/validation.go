package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalizeEmail lower-cases and trims an address and checks its format.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}
