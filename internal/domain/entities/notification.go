package entities

import (
	"fmt"
	"time"
)

// NotificationType classifies inbox entries.
type NotificationType string

const (
	NotificationTypeQuote     NotificationType = "cotizacion"
	NotificationTypeTransport NotificationType = "transporte"
)

// Notification is a user inbox entry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id, created_at
type Notification struct {
	ID        string           `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// QuoteLink is the dashboard path of a quote.
func QuoteLink(quoteID string) string {
	return "/dashboard/cotizacion/" + quoteID
}

// QuoteRespondedNotification is sent to the owner when an admin prices the quote.
func QuoteRespondedNotification(q Quote) Notification {
	return Notification{
		UserID:  q.UserID,
		Type:    NotificationTypeQuote,
		Title:   "Cotización Respondida",
		Message: fmt.Sprintf("Tu cotización %s ha sido respondida.", q.Reference),
		Link:    QuoteLink(q.ID),
	}
}

// TransportNotification is sent to the owner for every tracking event.
func TransportNotification(q Quote, label string) Notification {
	return Notification{
		UserID:  q.UserID,
		Type:    NotificationTypeTransport,
		Title:   "Actualización de Transporte",
		Message: fmt.Sprintf("Nuevo estado: %s - %s", label, q.Reference),
		Link:    QuoteLink(q.ID),
	}
}
