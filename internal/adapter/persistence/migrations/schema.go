package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner is satisfied by *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id             BIGSERIAL PRIMARY KEY,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		first_name     TEXT NOT NULL DEFAULT '',
		last_name      TEXT NOT NULL DEFAULT '',
		phone          TEXT,
		company_name   TEXT,
		role           TEXT NOT NULL DEFAULT 'usuario' CHECK (role IN ('admin', 'usuario', 'inactivo')),
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS email_verification_token TEXT`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS email_verification_token_expires TIMESTAMPTZ`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_verification_token ON users(email_verification_token)
		WHERE email_verification_token IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires    TIMESTAMPTZ NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		ip_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
	`CREATE TABLE IF NOT EXISTS cotizaciones (
		id                UUID PRIMARY KEY,
		user_id           BIGINT NOT NULL REFERENCES users(id),
		numero_cotizacion TEXT NOT NULL,
		estado            TEXT NOT NULL CHECK (estado IN ('pendiente', 'respondido', 'aprobado', 'desaprobado', 'transporte', 'finalizado')),
		origen            TEXT NOT NULL,
		destino           TEXT NOT NULL,
		tipo_servicio     TEXT NOT NULL,
		peso              NUMERIC(12, 3) NOT NULL CHECK (peso >= 0),
		volumen           NUMERIC(12, 3) NOT NULL CHECK (volumen >= 0),
		tipo_carga        TEXT NOT NULL,
		descripcion       TEXT,
		monto_total       NUMERIC(14, 2) CHECK (monto_total > 0),
		mensaje_admin     TEXT,
		fecha_aceptacion  TIMESTAMPTZ,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT cotizaciones_numero_cotizacion_key UNIQUE (numero_cotizacion),
		CONSTRAINT cotizaciones_terms_together CHECK ((monto_total IS NULL) = (mensaje_admin IS NULL))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cotizaciones_user_created ON cotizaciones(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_cotizaciones_estado ON cotizaciones(estado)`,
	`CREATE TABLE IF NOT EXISTS transport_updates (
		id            BIGSERIAL PRIMARY KEY,
		cotizacion_id UUID NOT NULL REFERENCES cotizaciones(id),
		estado        TEXT NOT NULL CHECK (estado <> ''),
		descripcion   TEXT,
		ubicacion     TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transport_updates_quote ON transport_updates(cotizacion_id, created_at DESC, id DESC)`,
}

// Apply creates every table and index idempotently in one transaction.
func Apply(ctx context.Context, db Beginner) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("apply schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("apply schema: commit: %w", err)
	}
	return nil
}
