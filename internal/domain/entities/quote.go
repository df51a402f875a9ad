package entities

import (
	"math"
	"strings"
	"time"
)

// Column limits of cotizaciones: peso/volumen NUMERIC(12,3) and
// monto_total NUMERIC(14,2).
const (
	MaxMeasure = 1e9
	MaxAmount  = 1e12
)

// QuoteStatus is the persisted lifecycle value of a quote (cotización).
//
// Domain notes:
//   - "accepted" and "in transport" share the persisted value transporte; the
//     distinction is the acceptance timestamp (see Quote.HasAcceptance).
//   - aprobado and desaprobado are legacy values only reachable through the
//     admin status override.
type QuoteStatus string

const (
	QuoteStatusPendiente   QuoteStatus = "pendiente"
	QuoteStatusRespondido  QuoteStatus = "respondido"
	QuoteStatusAprobado    QuoteStatus = "aprobado"
	QuoteStatusDesaprobado QuoteStatus = "desaprobado"
	QuoteStatusTransporte  QuoteStatus = "transporte"
	QuoteStatusFinalizado  QuoteStatus = "finalizado"
)

var knownQuoteStatuses = []QuoteStatus{
	QuoteStatusPendiente,
	QuoteStatusRespondido,
	QuoteStatusAprobado,
	QuoteStatusDesaprobado,
	QuoteStatusTransporte,
	QuoteStatusFinalizado,
}

// QuoteStatuses returns every status the override accepts.
func QuoteStatuses() []QuoteStatus {
	out := make([]QuoteStatus, len(knownQuoteStatuses))
	copy(out, knownQuoteStatuses)
	return out
}

func (s QuoteStatus) IsValid() bool {
	for _, k := range knownQuoteStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// ParseQuoteStatus normalizes user input ("  Transporte ") into a known status.
func ParseQuoteStatus(raw string) (QuoteStatus, bool) {
	s := QuoteStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// Shipment holds the cargo attributes captured at creation. They are never
// mutated afterwards.
type Shipment struct {
	Origin      string  `json:"origen"`
	Destination string  `json:"destino"`
	ServiceType string  `json:"tipo_servicio"`
	Weight      float64 `json:"peso"`
	Volume      float64 `json:"volumen"`
	CargoType   string  `json:"tipo_carga"`
	Description string  `json:"descripcion,omitempty"`
}

// Normalized trims every free-text field and rounds the measures to the
// stored scale.
func (s Shipment) Normalized() Shipment {
	s.Weight = roundTo(s.Weight, 1000)
	s.Volume = roundTo(s.Volume, 1000)
	s.Origin = strings.TrimSpace(s.Origin)
	s.Destination = strings.TrimSpace(s.Destination)
	s.ServiceType = strings.TrimSpace(s.ServiceType)
	s.CargoType = strings.TrimSpace(s.CargoType)
	s.Description = strings.TrimSpace(s.Description)
	return s
}

// Validate checks the structural rules of a shipment request.
func (s Shipment) Validate() error {
	n := s.Normalized()
	if n.Origin == "" || n.Destination == "" || n.ServiceType == "" || n.CargoType == "" {
		return ErrIncompleteShipment
	}
	if !isFinite(n.Weight) || !isFinite(n.Volume) {
		return ErrMeasureOutOfRange
	}
	if n.Weight < 0 || n.Volume < 0 {
		return ErrNegativeMeasure
	}
	if n.Weight >= MaxMeasure || n.Volume >= MaxMeasure {
		return ErrMeasureOutOfRange
	}
	return nil
}

// RoundAmount rounds a price to cents, the scale monto_total keeps.
func RoundAmount(amount float64) float64 {
	return roundTo(amount, 100)
}

func roundTo(v, scale float64) float64 {
	if !isFinite(v) {
		return v
	}
	return math.Round(v*scale) / scale
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Client carries the owner's contact fields joined from users for detail views.
type Client struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Quote is the freight quote persisted in Postgres (table cotizaciones).
//
// Invariants:
//   - QuotedAmount and AdminMessage are both nil or both set.
//   - AcceptedAt is nil until Accept succeeds and never changes afterwards.
type Quote struct {
	ID        string      `json:"id"`
	UserID    int64       `json:"user_id"`
	Reference string      `json:"numero_cotizacion"`
	Status    QuoteStatus `json:"estado"`
	Shipment  Shipment    `json:"shipment"`

	QuotedAmount *float64 `json:"monto_total"`
	AdminMessage *string  `json:"mensaje_admin"`

	AcceptedAt *time.Time `json:"fecha_aceptacion"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Client *Client `json:"client,omitempty"`
}

// HasAcceptance reports whether the client accepted the quote at some point.
func (q Quote) HasAcceptance() bool {
	return q.AcceptedAt != nil
}

// InTransport reports the logical in-transport phase of the collapsed state.
func (q Quote) InTransport() bool {
	return q.Status == QuoteStatusTransporte && q.HasAcceptance()
}

func (q Quote) IsFinished() bool {
	return q.Status == QuoteStatusFinalizado
}

func (q Quote) OwnedBy(userID int64) bool {
	return q.UserID == userID
}

// QuoteFilter narrows the admin listing.
type QuoteFilter struct {
	Status QuoteStatus
	Search string
}

// QuoteDetails is a quote together with its tracking history, newest first.
type QuoteDetails struct {
	Quote   Quote             `json:"quote"`
	History []TransportUpdate `json:"transport_updates"`
}
