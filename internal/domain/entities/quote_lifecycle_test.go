package entities

import (
	"errors"
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func pendingQuote() Quote {
	return NewQuote("q-1", 7, "COT-123456-001", Shipment{
		Origin:      " Lima ",
		Destination: "Miami",
		ServiceType: "maritimo",
		Weight:      10,
		Volume:      0.5,
		CargoType:   "general",
	}, t0)
}

func respondedQuote(t *testing.T) Quote {
	t.Helper()
	q := pendingQuote()
	if err := q.Respond(500, "Listo", t0.Add(time.Minute)); err != nil {
		t.Fatalf("respond: %v", err)
	}
	return q
}

func acceptedQuote(t *testing.T) Quote {
	t.Helper()
	q := respondedQuote(t)
	if _, err := q.Accept(t0.Add(2 * time.Minute)); err != nil {
		t.Fatalf("accept: %v", err)
	}
	return q
}

func TestNewQuote(t *testing.T) {
	q := pendingQuote()
	if q.Status != QuoteStatusPendiente {
		t.Fatalf("expected pendiente, got %s", q.Status)
	}
	if q.QuotedAmount != nil || q.AdminMessage != nil || q.AcceptedAt != nil {
		t.Fatalf("expected empty commercial terms: %+v", q)
	}
	if q.Shipment.Origin != "Lima" {
		t.Fatalf("expected trimmed origin, got %q", q.Shipment.Origin)
	}
}

func TestShipment_Validate(t *testing.T) {
	valid := Shipment{Origin: "Lima", Destination: "Miami", ServiceType: "aereo", CargoType: "general", Weight: 1}

	tests := []struct {
		name string
		mut  func(s *Shipment)
		want error
	}{
		{"valid", func(*Shipment) {}, nil},
		{"zero measures allowed", func(s *Shipment) { s.Weight, s.Volume = 0, 0 }, nil},
		{"blank origin", func(s *Shipment) { s.Origin = "  " }, ErrIncompleteShipment},
		{"missing cargo type", func(s *Shipment) { s.CargoType = "" }, ErrIncompleteShipment},
		{"negative weight", func(s *Shipment) { s.Weight = -1 }, ErrNegativeMeasure},
		{"negative volume", func(s *Shipment) { s.Volume = -0.1 }, ErrNegativeMeasure},
		{"nan weight", func(s *Shipment) { s.Weight = math.NaN() }, ErrMeasureOutOfRange},
		{"infinite volume", func(s *Shipment) { s.Volume = math.Inf(1) }, ErrMeasureOutOfRange},
		{"negative infinite weight", func(s *Shipment) { s.Weight = math.Inf(-1) }, ErrMeasureOutOfRange},
		{"weight over column limit", func(s *Shipment) { s.Weight = 1e15 }, ErrMeasureOutOfRange},
		{"volume rounds up to limit", func(s *Shipment) { s.Volume = 999999999.9996 }, ErrMeasureOutOfRange},
		{"largest storable weight", func(s *Shipment) { s.Weight = 999999999.999 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mut(&s)
			err := s.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if tt.want != nil && !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input kind, got %v", err)
			}
		})
	}
}

func TestShipment_NormalizedRoundsMeasures(t *testing.T) {
	s := Shipment{Weight: 10.00049, Volume: 0.5006}.Normalized()
	if s.Weight != 10 || s.Volume != 0.501 {
		t.Fatalf("unexpected measures %v %v", s.Weight, s.Volume)
	}
}

func TestValidateResponse_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   error
	}{
		{"one cent", 0.01, nil},
		{"below half a cent", 0.004, ErrInvalidAmount},
		{"largest storable", 999999999999.99, nil},
		{"overflow", 1e13, ErrAmountOutOfRange},
		{"nan", math.NaN(), ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateResponse(tt.amount, "ok"); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestQuote_Respond(t *testing.T) {
	t.Run("sets terms together", func(t *testing.T) {
		q := respondedQuote(t)
		if q.Status != QuoteStatusRespondido {
			t.Fatalf("expected respondido, got %s", q.Status)
		}
		if q.QuotedAmount == nil || *q.QuotedAmount != 500 || q.AdminMessage == nil || *q.AdminMessage != "Listo" {
			t.Fatalf("unexpected terms: %+v", q)
		}
		if !q.UpdatedAt.Equal(t0.Add(time.Minute)) {
			t.Fatalf("expected updated_at to move")
		}
	})

	t.Run("re-pricing allowed while responded", func(t *testing.T) {
		q := respondedQuote(t)
		if err := q.Respond(650, "Nuevo precio", t0.Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *q.QuotedAmount != 650 || *q.AdminMessage != "Nuevo precio" {
			t.Fatalf("unexpected terms: %+v", q)
		}
	})

	invalid := []struct {
		name    string
		amount  float64
		message string
	}{
		{"zero amount", 0, "ok"},
		{"negative amount", -5, "ok"},
		{"nan amount", math.NaN(), "ok"},
		{"infinite amount", math.Inf(1), "ok"},
		{"rounds to zero cents", 0.001, "ok"},
		{"amount over column limit", 1e13, "ok"},
		{"amount at column limit", 1e12, "ok"},
		{"blank message", 10, "   "},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			q := pendingQuote()
			err := q.Respond(tt.amount, tt.message, t0)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if q.QuotedAmount != nil || q.AdminMessage != nil || q.Status != QuoteStatusPendiente {
				t.Fatalf("quote mutated on invalid input: %+v", q)
			}
		})
	}

	t.Run("stores amount rounded to cents", func(t *testing.T) {
		q := pendingQuote()
		if err := q.Respond(500.126, "ok", t0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *q.QuotedAmount != 500.13 {
			t.Fatalf("expected 500.13, got %v", *q.QuotedAmount)
		}
	})

	t.Run("rejected once in transport", func(t *testing.T) {
		q := acceptedQuote(t)
		err := q.Respond(10, "tarde", t0.Add(time.Hour))
		if !errors.Is(err, ErrInvalidTransition) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		if *q.QuotedAmount != 500 {
			t.Fatalf("amount changed")
		}
	})
}

func TestQuote_Accept(t *testing.T) {
	t.Run("first acceptance", func(t *testing.T) {
		q := respondedQuote(t)
		changed, err := q.Accept(t0.Add(2 * time.Minute))
		if err != nil || !changed {
			t.Fatalf("expected change, got %v %v", changed, err)
		}
		if q.Status != QuoteStatusTransporte || !q.InTransport() {
			t.Fatalf("expected transporte, got %s", q.Status)
		}
		if q.AcceptedAt == nil || !q.AcceptedAt.Equal(t0.Add(2*time.Minute)) {
			t.Fatalf("unexpected acceptance time %v", q.AcceptedAt)
		}
	})

	t.Run("second acceptance is a no-op", func(t *testing.T) {
		q := acceptedQuote(t)
		first := *q.AcceptedAt
		changed, err := q.Accept(t0.Add(time.Hour))
		if err != nil || changed {
			t.Fatalf("expected idempotent no-op, got %v %v", changed, err)
		}
		if !q.AcceptedAt.Equal(first) {
			t.Fatalf("acceptance time rewritten")
		}
	})

	t.Run("pending cannot be accepted", func(t *testing.T) {
		q := pendingQuote()
		_, err := q.Accept(t0)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		if q.AcceptedAt != nil {
			t.Fatalf("acceptance time set")
		}
	})

	t.Run("responded override without price", func(t *testing.T) {
		q := pendingQuote()
		_ = q.OverrideStatus(QuoteStatusRespondido, t0)
		_, err := q.Accept(t0)
		if !errors.Is(err, ErrQuoteNotPriced) {
			t.Fatalf("expected ErrQuoteNotPriced, got %v", err)
		}
	})

	t.Run("re-acceptance after override keeps original time", func(t *testing.T) {
		q := acceptedQuote(t)
		first := *q.AcceptedAt
		_ = q.OverrideStatus(QuoteStatusRespondido, t0.Add(time.Hour))
		changed, err := q.Accept(t0.Add(2 * time.Hour))
		if err != nil || !changed {
			t.Fatalf("expected change, got %v %v", changed, err)
		}
		if !q.AcceptedAt.Equal(first) {
			t.Fatalf("acceptance time rewritten")
		}
	})
}

func TestQuote_CanTrack(t *testing.T) {
	if err := pendingQuote().CanTrack(); !errors.Is(err, ErrQuoteNotAccepted) {
		t.Fatalf("expected ErrQuoteNotAccepted, got %v", err)
	}
	if err := acceptedQuote(t).CanTrack(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := acceptedQuote(t)
	_ = q.OverrideStatus(QuoteStatusFinalizado, t0)
	if err := q.CanTrack(); !errors.Is(err, ErrQuoteFinished) {
		t.Fatalf("expected ErrQuoteFinished, got %v", err)
	}
}

func TestQuote_Complete(t *testing.T) {
	confirmed := []TransportUpdate{
		NewTransportUpdate("q-1", TransportLabelClientConfirmed, TransportDescriptionClientConfirmed, "", t0),
		NewTransportUpdate("q-1", "Salió de puerto", "", "Callao", t0),
	}

	t.Run("requires client confirmation", func(t *testing.T) {
		q := acceptedQuote(t)
		_, err := q.Complete(confirmed[1:], t0.Add(time.Hour))
		if !errors.Is(err, ErrMissingClientConfirmation) {
			t.Fatalf("expected ErrMissingClientConfirmation, got %v", err)
		}
		if q.Status != QuoteStatusTransporte {
			t.Fatalf("status changed")
		}
	})

	t.Run("requires transport", func(t *testing.T) {
		q := respondedQuote(t)
		_, err := q.Complete(confirmed, t0)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		q := acceptedQuote(t)
		u, err := q.Complete(confirmed, t0.Add(time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != QuoteStatusFinalizado {
			t.Fatalf("expected finalizado, got %s", q.Status)
		}
		if u.Label != TransportLabelFinished || u.QuoteID != "q-1" || u.Description == nil {
			t.Fatalf("unexpected closing entry: %+v", u)
		}
	})

	t.Run("finished is terminal", func(t *testing.T) {
		q := acceptedQuote(t)
		if _, err := q.Complete(confirmed, t0.Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := q.Complete(confirmed, t0.Add(2*time.Hour)); !errors.Is(err, ErrQuoteFinished) {
			t.Fatalf("expected ErrQuoteFinished, got %v", err)
		}
		if err := q.Respond(1, "x", t0); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict on respond, got %v", err)
		}
		if changed, err := q.Accept(t0); err != nil || changed {
			t.Fatalf("expected accept no-op, got %v %v", changed, err)
		}
		if err := q.OverrideStatus(QuoteStatusTransporte, t0); err != nil {
			t.Fatalf("override must stay available: %v", err)
		}
	})
}

func TestQuote_OverrideStatus(t *testing.T) {
	q := pendingQuote()
	if err := q.OverrideStatus("enviado", t0); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if q.Status != QuoteStatusPendiente {
		t.Fatalf("status changed on invalid override")
	}
	for _, s := range QuoteStatuses() {
		if err := q.OverrideStatus(s, t0.Add(time.Second)); err != nil {
			t.Fatalf("override to %s: %v", s, err)
		}
		if q.Status != s || !q.UpdatedAt.Equal(t0.Add(time.Second)) {
			t.Fatalf("override to %s not applied", s)
		}
	}
}

func TestParseQuoteStatus(t *testing.T) {
	if s, ok := ParseQuoteStatus("  Transporte "); !ok || s != QuoteStatusTransporte {
		t.Fatalf("expected transporte, got %q %v", s, ok)
	}
	if _, ok := ParseQuoteStatus("accepted"); ok {
		t.Fatalf("expected unknown status")
	}
	if len(QuoteStatuses()) != 6 {
		t.Fatalf("expected six statuses")
	}
}

func TestNotifications(t *testing.T) {
	q := respondedQuote(t)
	n := QuoteRespondedNotification(q)
	if n.UserID != 7 || n.Title != "Cotización Respondida" || n.Message != "Tu cotización COT-123456-001 ha sido respondida." {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if n.Link != "/dashboard/cotizacion/q-1" {
		t.Fatalf("unexpected link %q", n.Link)
	}
	tn := TransportNotification(q, "Salió de puerto")
	if tn.Message != "Nuevo estado: Salió de puerto - COT-123456-001" || tn.Type != NotificationTypeTransport {
		t.Fatalf("unexpected notification: %+v", tn)
	}
}
