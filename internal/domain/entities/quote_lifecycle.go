package entities

import (
	"fmt"
	"strings"
	"time"
)

// The methods below are the pure lifecycle decisions. They only mutate the
// receiver; persistence and notification happen in the use case once a
// decision has been taken.
//
//	pendiente ──respond──▶ respondido ──accept──▶ transporte ──complete──▶ finalizado
//	               ▲  └─respond─┘                     │
//	               └──────────────────────────────────┘ (tracking events only)

// NewQuote builds a pending quote for the given owner.
func NewQuote(id string, userID int64, reference string, shipment Shipment, now time.Time) Quote {
	return Quote{
		ID:        id,
		UserID:    userID,
		Reference: reference,
		Status:    QuoteStatusPendiente,
		Shipment:  shipment.Normalized(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Respond sets the commercial terms. Re-pricing is allowed while the client
// has not accepted yet. The amount is stored rounded to cents.
func (q *Quote) Respond(amount float64, message string, now time.Time) error {
	if err := ValidateResponse(amount, message); err != nil {
		return err
	}
	if q.Status != QuoteStatusPendiente && q.Status != QuoteStatusRespondido {
		return fmt.Errorf("%w: respond from %s", ErrInvalidTransition, q.Status)
	}

	msg := strings.TrimSpace(message)
	amount = RoundAmount(amount)
	q.QuotedAmount = &amount
	q.AdminMessage = &msg
	q.Status = QuoteStatusRespondido
	q.UpdatedAt = now
	return nil
}

// ValidateResponse checks the admin pricing payload against the cent-rounded
// amount, so 0.001 is rejected rather than stored as zero.
func ValidateResponse(amount float64, message string) error {
	if !isFinite(amount) {
		return ErrInvalidAmount
	}
	rounded := RoundAmount(amount)
	if rounded <= 0 {
		return ErrInvalidAmount
	}
	if rounded >= MaxAmount {
		return ErrAmountOutOfRange
	}
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// Accept moves a responded quote into transport. It reports false, without
// touching the quote, when the quote was already accepted.
func (q *Quote) Accept(now time.Time) (bool, error) {
	if q.HasAcceptance() && (q.Status == QuoteStatusTransporte || q.Status == QuoteStatusFinalizado) {
		return false, nil
	}
	if q.Status != QuoteStatusRespondido {
		return false, fmt.Errorf("%w: accept from %s", ErrInvalidTransition, q.Status)
	}
	if q.QuotedAmount == nil {
		return false, ErrQuoteNotPriced
	}

	if q.AcceptedAt == nil {
		at := now
		q.AcceptedAt = &at
	}
	q.Status = QuoteStatusTransporte
	q.UpdatedAt = now
	return true, nil
}

// CanTrack checks whether a tracking event may be appended.
func (q Quote) CanTrack() error {
	if !q.HasAcceptance() {
		return ErrQuoteNotAccepted
	}
	if q.IsFinished() {
		return ErrQuoteFinished
	}
	return nil
}

// Complete closes the shipment and returns the closing tracking event.
func (q *Quote) Complete(history []TransportUpdate, now time.Time) (TransportUpdate, error) {
	if q.IsFinished() {
		return TransportUpdate{}, ErrQuoteFinished
	}
	if !q.InTransport() {
		return TransportUpdate{}, fmt.Errorf("%w: complete from %s", ErrInvalidTransition, q.Status)
	}
	if !HasClientConfirmation(history) {
		return TransportUpdate{}, ErrMissingClientConfirmation
	}

	q.Status = QuoteStatusFinalizado
	q.UpdatedAt = now
	return NewTransportUpdate(q.ID, TransportLabelFinished, TransportDescriptionFinished, "", now), nil
}

// OverrideStatus is the administrative escape hatch. It bypasses the
// transition table and only validates the enum.
func (q *Quote) OverrideStatus(status QuoteStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	q.Status = status
	q.UpdatedAt = now
	return nil
}
