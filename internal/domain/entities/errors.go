package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them so callers
// can classify with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrIncompleteShipment  = fmt.Errorf("%w: origin, destination, service type and cargo type are required", ErrInvalidInput)
	ErrNegativeMeasure     = fmt.Errorf("%w: weight and volume must be non-negative numbers", ErrInvalidInput)
	ErrMeasureOutOfRange   = fmt.Errorf("%w: weight and volume must be finite and below 1e9", ErrInvalidInput)
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be a positive number of at least 0.01", ErrInvalidInput)
	ErrAmountOutOfRange    = fmt.Errorf("%w: amount must be below 1e12", ErrInvalidInput)
	ErrEmptyMessage        = fmt.Errorf("%w: message is required", ErrInvalidInput)
	ErrInvalidStatus       = fmt.Errorf("%w: unknown quote status", ErrInvalidInput)
	ErrEmptyTransportLabel = fmt.Errorf("%w: transport status label is required", ErrInvalidInput)

	ErrInvalidName        = fmt.Errorf("%w: first and last name need at least 2 characters", ErrInvalidInput)
	ErrInvalidCompany     = fmt.Errorf("%w: company name needs at least 2 characters", ErrInvalidInput)
	ErrInvalidPhone       = fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	ErrWeakPassword       = fmt.Errorf("%w: password needs 8 characters with upper and lower case letters, a digit and a symbol", ErrInvalidInput)
	ErrEmptyProfileUpdate = fmt.Errorf("%w: no profile fields to update", ErrInvalidInput)

	ErrInvalidTransition         = fmt.Errorf("%w: transition not allowed from current state", ErrConflict)
	ErrQuoteNotPriced            = fmt.Errorf("%w: quote has not been priced", ErrConflict)
	ErrQuoteNotAccepted          = fmt.Errorf("%w: quote has not been accepted", ErrConflict)
	ErrQuoteFinished             = fmt.Errorf("%w: quote transport is already finished", ErrConflict)
	ErrMissingClientConfirmation = fmt.Errorf("%w: client has not confirmed the transport", ErrConflict)
)
