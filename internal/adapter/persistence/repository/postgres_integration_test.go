package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"logistica_cotizaciones/internal/adapter/persistence/migrations"
	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/infrastructure/database"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Integration tests run against a disposable database named by
// TEST_DATABASE_URL.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := migrations.Apply(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, email string, role entities.Role) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (email, password_hash, first_name, last_name, role, email_verified)
		VALUES (@email, 'salt:key', 'Ana', 'Pérez', @role, TRUE)
		RETURNING id`,
		pgx.NamedArgs{"email": email, "role": string(role)},
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func TestPostgresRepositories(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	logger := zap.NewNop()
	tm := database.NewTransactionManager(pool, logger)
	quotes := NewQuotePostgresRepository(pool, tm, logger)
	users := NewUserPostgresRepository(pool)
	sessions := NewSessionPostgresRepository(pool)

	suffix := uuid.NewString()[:8]
	email := "Cliente-" + suffix + "@Example.com"
	userID := seedUser(t, pool, email, entities.RoleUser)
	now := time.Now().UTC().Truncate(time.Microsecond)
	reference := "COT-" + suffix + "-001"

	shipment := entities.Shipment{
		Origin: "Buenos Aires", Destination: "Córdoba", ServiceType: "terrestre",
		Weight: 120.5, Volume: 2, CargoType: "general",
	}
	q := entities.NewQuote(uuid.NewString(), userID, reference, shipment, now)

	t.Run("users", func(t *testing.T) {
		u, err := users.GetByEmail(ctx, "cliente-"+suffix+"@example.com")
		if err != nil || u.ID != userID {
			t.Fatalf("expected case-insensitive lookup, got %+v %v", u, err)
		}
		missing, err := users.GetByID(ctx, -1)
		if err != nil || missing.ID != 0 {
			t.Fatalf("expected zero user, got %+v %v", missing, err)
		}
	})

	t.Run("user registration and verification", func(t *testing.T) {
		profile := entities.UserProfile{FirstName: "Rosa", LastName: "Mamani", CompanyName: "Puno Cargo", Phone: "051 365 000"}
		pending := entities.NewUser("rosa-"+suffix+"@puno.pe", "salt:key", profile, false, now)
		v := entities.EmailVerification{Token: "ver-" + suffix, ExpiresAt: now.Add(time.Hour)}

		created, err := users.Create(ctx, pending, &v)
		if err != nil || created.ID == 0 || created.EmailVerified || created.CompanyName != "Puno Cargo" {
			t.Fatalf("unexpected create: %+v %v", created, err)
		}
		if _, err := users.Create(ctx, pending, nil); !errors.Is(err, interfaces.ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}

		expired, err := users.VerifyEmail(ctx, v.Token, now.Add(2*time.Hour))
		if err != nil || expired.ID != 0 {
			t.Fatalf("expected expired token to be rejected, got %+v %v", expired, err)
		}
		verified, err := users.VerifyEmail(ctx, v.Token, now)
		if err != nil || verified.ID != created.ID || !verified.EmailVerified {
			t.Fatalf("unexpected verify: %+v %v", verified, err)
		}
		again, err := users.VerifyEmail(ctx, v.Token, now)
		if err != nil || again.ID != 0 {
			t.Fatalf("expected token to be consumed, got %+v %v", again, err)
		}

		fresh := entities.EmailVerification{Token: "ver2-" + suffix, ExpiresAt: now.Add(time.Hour)}
		if err := users.SetVerification(ctx, created.ID, fresh); err != nil {
			t.Fatalf("set verification: %v", err)
		}
		if got, _ := users.VerifyEmail(ctx, fresh.Token, now); got.ID != created.ID {
			t.Fatalf("expected replaced token to verify, got %+v", got)
		}
	})

	t.Run("user admin operations", func(t *testing.T) {
		profile := entities.UserProfile{FirstName: "Luis", LastName: "Huamán", CompanyName: "Cusco Freight", Phone: "084 222 333"}
		u, err := users.Create(ctx, entities.NewUser("luis-"+suffix+"@cusco.pe", "salt:key", profile, true, now), nil)
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		list, err := users.List(ctx, entities.UserFilter{Search: "LUIS-" + suffix})
		if err != nil || len(list) != 1 || list[0].ID != u.ID {
			t.Fatalf("unexpected search: %+v %v", list, err)
		}
		admins, err := users.List(ctx, entities.UserFilter{Search: suffix, Role: entities.RoleAdmin})
		if err != nil || len(admins) != 0 {
			t.Fatalf("expected no admins, got %+v %v", admins, err)
		}

		phone := "084 999 000"
		updated, err := users.UpdateProfile(ctx, u.ID, entities.UserProfileUpdate{Phone: &phone})
		if err != nil || updated.Phone != phone || updated.FirstName != "Luis" {
			t.Fatalf("unexpected update: %+v %v", updated, err)
		}
		if missing, err := users.UpdateProfile(ctx, -1, entities.UserProfileUpdate{Phone: &phone}); err != nil || missing.ID != 0 {
			t.Fatalf("expected zero user, got %+v %v", missing, err)
		}

		for _, tok := range []string{"a-" + suffix, "b-" + suffix} {
			s := entities.Session{Token: tok, UserID: u.ID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
			if err := sessions.Create(ctx, s); err != nil {
				t.Fatalf("create session: %v", err)
			}
		}
		inactive, err := users.SetRole(ctx, u.ID, entities.RoleInactive)
		if err != nil || inactive.Role != entities.RoleInactive {
			t.Fatalf("unexpected role change: %+v %v", inactive, err)
		}
		revoked, err := sessions.DeleteByUserID(ctx, u.ID)
		if err != nil || len(revoked) != 2 {
			t.Fatalf("unexpected revocation: %v %v", revoked, err)
		}
		if got, _ := sessions.GetByToken(ctx, "a-"+suffix); got.Token != "" {
			t.Fatalf("expected session revoked")
		}
	})

	t.Run("sessions", func(t *testing.T) {
		s := entities.Session{
			Token: "tok-" + suffix, UserID: userID, UserAgent: "agent",
			ExpiresAt: now.Add(time.Hour), CreatedAt: now,
		}
		if err := sessions.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := sessions.GetByToken(ctx, s.Token)
		if err != nil || got.Role != entities.RoleUser || got.Email != email {
			t.Fatalf("unexpected session: %+v %v", got, err)
		}
		if err := sessions.Delete(ctx, s.Token); err != nil {
			t.Fatalf("delete: %v", err)
		}
		gone, _ := sessions.GetByToken(ctx, s.Token)
		if gone.Token != "" {
			t.Fatalf("expected session deleted")
		}
	})

	t.Run("create and duplicate reference", func(t *testing.T) {
		if _, err := quotes.Create(ctx, q); err != nil {
			t.Fatalf("create: %v", err)
		}
		dup := entities.NewQuote(uuid.NewString(), userID, reference, shipment, now)
		if _, err := quotes.Create(ctx, dup); !errors.Is(err, interfaces.ErrDuplicateReference) {
			t.Fatalf("expected ErrDuplicateReference, got %v", err)
		}
	})

	t.Run("read back with client", func(t *testing.T) {
		got, err := quotes.GetByID(ctx, q.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != entities.QuoteStatusPendiente || got.Client == nil || got.Client.Email != email {
			t.Fatalf("unexpected quote: %+v", got)
		}
		if got.Shipment.Weight != 120.5 {
			t.Fatalf("expected weight 120.5, got %v", got.Shipment.Weight)
		}
	})

	t.Run("apply commits mutation and entry", func(t *testing.T) {
		got, entry, err := quotes.Apply(ctx, q.ID, func(cur *entities.Quote, _ []entities.TransportUpdate) (*entities.TransportUpdate, error) {
			if err := cur.Respond(1500, "Precio final", now); err != nil {
				return nil, err
			}
			if _, err := cur.Accept(now); err != nil {
				return nil, err
			}
			u := entities.NewTransportUpdate(cur.ID, "En camino", "", "Rosario", now)
			return &u, nil
		})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if got.Status != entities.QuoteStatusTransporte || entry == nil || entry.ID == 0 {
			t.Fatalf("unexpected result: %+v %+v", got, entry)
		}
		history, err := quotes.ListTransportUpdates(ctx, q.ID)
		if err != nil || len(history) != 1 || *history[0].Location != "Rosario" {
			t.Fatalf("unexpected history: %+v %v", history, err)
		}
	})

	t.Run("apply rolls back on error", func(t *testing.T) {
		_, _, err := quotes.Apply(ctx, q.ID, func(cur *entities.Quote, _ []entities.TransportUpdate) (*entities.TransportUpdate, error) {
			cur.Status = entities.QuoteStatusFinalizado
			return nil, entities.ErrMissingClientConfirmation
		})
		if !errors.Is(err, entities.ErrMissingClientConfirmation) {
			t.Fatalf("expected mutation error, got %v", err)
		}
		got, _ := quotes.GetByID(ctx, q.ID)
		if got.Status != entities.QuoteStatusTransporte {
			t.Fatalf("expected rollback, got %s", got.Status)
		}
	})

	t.Run("apply on missing quote", func(t *testing.T) {
		got, _, err := quotes.Apply(ctx, uuid.NewString(), func(*entities.Quote, []entities.TransportUpdate) (*entities.TransportUpdate, error) {
			t.Fatalf("mutation must not run")
			return nil, nil
		})
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero quote, got %+v %v", got, err)
		}
	})

	t.Run("admin list filters", func(t *testing.T) {
		list, err := quotes.List(ctx, entities.QuoteFilter{Status: entities.QuoteStatusTransporte, Search: suffix})
		if err != nil || len(list) != 1 || list[0].ID != q.ID {
			t.Fatalf("unexpected list: %+v %v", list, err)
		}
		none, err := quotes.List(ctx, entities.QuoteFilter{Status: entities.QuoteStatusPendiente, Search: suffix})
		if err != nil || len(none) != 0 {
			t.Fatalf("expected empty list, got %+v %v", none, err)
		}
		mine, err := quotes.ListByUserID(ctx, userID)
		if err != nil || len(mine) != 1 {
			t.Fatalf("unexpected owner list: %+v %v", mine, err)
		}
	})
}
