package entities

import (
	"strings"
	"time"
)

const (
	// TransportLabelClientConfirmed is the only label a client may post.
	TransportLabelClientConfirmed = "Transporte Completo"
	// TransportDescriptionClientConfirmed accompanies the client confirmation.
	TransportDescriptionClientConfirmed = "El cliente ha confirmado la finalización del transporte."

	TransportLabelFinished       = "Transporte Finalizado"
	TransportDescriptionFinished = "El transporte ha sido marcado como finalizado por el administrador."
)

// TransportUpdate is one append-only tracking event of an accepted quote
// (table transport_updates). Rows are never mutated or deleted.
type TransportUpdate struct {
	ID          int64     `json:"id"`
	QuoteID     string    `json:"cotizacion_id"`
	Label       string    `json:"estado"`
	Description *string   `json:"descripcion"`
	Location    *string   `json:"ubicacion"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransportUpdateInput is a tracking event as submitted by an actor.
type TransportUpdateInput struct {
	Label       string
	Description string
	Location    string
}

// NewTransportUpdate builds an unsaved entry; blank optional fields become nil.
func NewTransportUpdate(quoteID, label, description, location string, now time.Time) TransportUpdate {
	return TransportUpdate{
		QuoteID:     quoteID,
		Label:       strings.TrimSpace(label),
		Description: optionalString(description),
		Location:    optionalString(location),
		CreatedAt:   now,
	}
}

// HasClientConfirmation reports whether the owner already confirmed delivery.
func HasClientConfirmation(history []TransportUpdate) bool {
	for _, h := range history {
		if h.Label == TransportLabelClientConfirmed {
			return true
		}
	}
	return false
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
