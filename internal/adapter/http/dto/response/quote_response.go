package response

import (
	"time"

	"logistica_cotizaciones/internal/domain/entities"
)

type ClientResponse struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type QuoteResponse struct {
	ID               string          `json:"id"`
	UserID           int64           `json:"user_id"`
	NumeroCotizacion string          `json:"numero_cotizacion"`
	Estado           string          `json:"estado"`
	Origen           string          `json:"origen"`
	Destino          string          `json:"destino"`
	TipoServicio     string          `json:"tipo_servicio"`
	Peso             float64         `json:"peso"`
	Volumen          float64         `json:"volumen"`
	TipoCarga        string          `json:"tipo_carga"`
	Descripcion      string          `json:"descripcion,omitempty"`
	MontoTotal       *float64        `json:"monto_total"`
	MensajeAdmin     *string         `json:"mensaje_admin"`
	FechaAceptacion  *time.Time      `json:"fecha_aceptacion"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Client           *ClientResponse `json:"client,omitempty"`
}

type TransportUpdateResponse struct {
	ID           int64     `json:"id"`
	CotizacionID string    `json:"cotizacion_id"`
	Estado       string    `json:"estado"`
	Descripcion  *string   `json:"descripcion"`
	Ubicacion    *string   `json:"ubicacion"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuoteDetailsResponse struct {
	Quote            QuoteResponse             `json:"quote"`
	TransportUpdates []TransportUpdateResponse `json:"transport_updates"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:               q.ID,
		UserID:           q.UserID,
		NumeroCotizacion: q.Reference,
		Estado:           string(q.Status),
		Origen:           q.Shipment.Origin,
		Destino:          q.Shipment.Destination,
		TipoServicio:     q.Shipment.ServiceType,
		Peso:             q.Shipment.Weight,
		Volumen:          q.Shipment.Volume,
		TipoCarga:        q.Shipment.CargoType,
		Descripcion:      q.Shipment.Description,
		MontoTotal:       q.QuotedAmount,
		MensajeAdmin:     q.AdminMessage,
		FechaAceptacion:  q.AcceptedAt,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
	if q.Client != nil {
		resp.Client = &ClientResponse{
			FirstName:   q.Client.FirstName,
			LastName:    q.Client.LastName,
			Email:       q.Client.Email,
			Phone:       q.Client.Phone,
			CompanyName: q.Client.CompanyName,
		}
	}
	return resp
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromTransportUpdate(u entities.TransportUpdate) TransportUpdateResponse {
	return TransportUpdateResponse{
		ID:           u.ID,
		CotizacionID: u.QuoteID,
		Estado:       u.Label,
		Descripcion:  u.Description,
		Ubicacion:    u.Location,
		CreatedAt:    u.CreatedAt,
	}
}

func FromQuoteDetails(d entities.QuoteDetails) QuoteDetailsResponse {
	updates := make([]TransportUpdateResponse, 0, len(d.History))
	for _, u := range d.History {
		updates = append(updates, FromTransportUpdate(u))
	}
	return QuoteDetailsResponse{Quote: FromQuote(d.Quote), TransportUpdates: updates}
}
