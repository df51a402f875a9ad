package request

import (
	"strings"

	"logistica_cotizaciones/internal/domain/entities"
)

// StatusAll is the listing filter value that disables status filtering.
const StatusAll = "all"

// CreateQuoteRequest is the client's freight request.
type CreateQuoteRequest struct {
	Origen       string   `json:"origen" binding:"required"`
	Destino      string   `json:"destino" binding:"required"`
	TipoServicio string   `json:"tipo_servicio" binding:"required"`
	Peso         *float64 `json:"peso" binding:"required"`
	Volumen      *float64 `json:"volumen" binding:"required"`
	TipoCarga    string   `json:"tipo_carga" binding:"required"`
	Descripcion  string   `json:"descripcion"`
}

func (r CreateQuoteRequest) ToShipment() entities.Shipment {
	s := entities.Shipment{
		Origin:      r.Origen,
		Destination: r.Destino,
		ServiceType: r.TipoServicio,
		CargoType:   r.TipoCarga,
		Description: r.Descripcion,
	}
	if r.Peso != nil {
		s.Weight = *r.Peso
	}
	if r.Volumen != nil {
		s.Volume = *r.Volumen
	}
	return s
}

// RespondQuoteRequest carries the admin pricing.
type RespondQuoteRequest struct {
	MontoTotal   *float64 `json:"monto_total" binding:"required"`
	MensajeAdmin string   `json:"mensaje_admin"`
}

func (r RespondQuoteRequest) Amount() float64 {
	if r.MontoTotal == nil {
		return 0
	}
	return *r.MontoTotal
}

// TransportUpdateRequest is a tracking event. Clients may omit estado, which
// defaults to the delivery confirmation.
type TransportUpdateRequest struct {
	Estado      string `json:"estado"`
	Descripcion string `json:"descripcion"`
	Ubicacion   string `json:"ubicacion"`
}

func (r TransportUpdateRequest) ToInput() entities.TransportUpdateInput {
	return entities.TransportUpdateInput{
		Label:       r.Estado,
		Description: r.Descripcion,
		Location:    r.Ubicacion,
	}
}

type UpdateQuoteStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

// QuoteListQuery are the admin listing query parameters.
type QuoteListQuery struct {
	Estado string `form:"estado"`
	Search string `form:"search"`
}

// ToFilter maps "all" or an empty estado to no status filter. Unknown values
// are passed through so the use case can reject them.
func (q QuoteListQuery) ToFilter() entities.QuoteFilter {
	filter := entities.QuoteFilter{Search: strings.TrimSpace(q.Search)}
	raw := strings.TrimSpace(q.Estado)
	if raw == "" || strings.EqualFold(raw, StatusAll) {
		return filter
	}
	if status, ok := entities.ParseQuoteStatus(raw); ok {
		filter.Status = status
		return filter
	}
	filter.Status = entities.QuoteStatus(raw)
	return filter
}
