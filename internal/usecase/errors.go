package usecase

import (
	"errors"
	"fmt"

	"logistica_cotizaciones/internal/domain/entities"
)

// Error kinds shared with the domain. Handlers classify on these.
var (
	ErrNotFound     = entities.ErrNotFound
	ErrForbidden    = entities.ErrForbidden
	ErrInvalidInput = entities.ErrInvalidInput
	ErrConflict     = entities.ErrConflict
	ErrInternal     = errors.New("internal error")

	ErrUnauthenticated = errors.New("unauthenticated")
)

var (
	ErrQuoteNotFound         = fmt.Errorf("%w: quote not found", ErrNotFound)
	ErrInvalidQuoteID        = fmt.Errorf("%w: invalid quote id", ErrInvalidInput)
	ErrAdminRequired         = fmt.Errorf("%w: admin role required", ErrForbidden)
	ErrNotQuoteOwner         = fmt.Errorf("%w: quote belongs to another user", ErrForbidden)
	ErrClientLabelNotAllowed = fmt.Errorf("%w: clients may only confirm transport completion", ErrForbidden)
	ErrReferenceExhausted    = fmt.Errorf("%w: could not allocate a unique quote reference", ErrInternal)

	ErrNotificationNotFound = fmt.Errorf("%w: notification not found", ErrNotFound)
	ErrNotNotificationOwner = fmt.Errorf("%w: notification belongs to another user", ErrForbidden)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	ErrSessionInvalid     = fmt.Errorf("%w: session expired or invalid", ErrUnauthenticated)
	ErrEmailNotVerified   = fmt.Errorf("%w: email not verified", ErrForbidden)
	ErrAccountInactive    = fmt.Errorf("%w: account is inactive", ErrForbidden)

	ErrInvalidEmail             = fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	ErrPasswordMismatch         = fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	ErrEmailTaken               = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrVerificationTokenInvalid = fmt.Errorf("%w: verification token expired or invalid", ErrInvalidInput)
	ErrEmailAlreadyVerified     = fmt.Errorf("%w: email already verified", ErrConflict)
	ErrVerificationNotSent      = fmt.Errorf("%w: verification email could not be sent", ErrInternal)

	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrInvalidUserID    = fmt.Errorf("%w: invalid user id", ErrInvalidInput)
	ErrInvalidRole      = fmt.Errorf("%w: unknown role", ErrInvalidInput)
	ErrSelfDeactivation = fmt.Errorf("%w: admins cannot deactivate their own account", ErrConflict)
)
