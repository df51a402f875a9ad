package repository

import (
	"context"
	"errors"
	"fmt"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/infrastructure/database"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

// SessionPostgresRepository stores bearer sessions. Reads join the owner's
// email and role so a request needs a single lookup.
type SessionPostgresRepository struct {
	conn database.PostgresPool
}

var _ interfaces.ISessionRepository = (*SessionPostgresRepository)(nil)

func NewSessionPostgresRepository(conn database.PostgresPool) *SessionPostgresRepository {
	return &SessionPostgresRepository{conn: conn}
}

func (r *SessionPostgresRepository) Create(ctx context.Context, s entities.Session) error {
	const query = `
	INSERT INTO sessions (token, user_id, expires, user_agent, ip_address, created_at)
	VALUES (@token, @user_id, @expires, @user_agent, @ip_address, @created_at)`

	args := pgx.NamedArgs{
		"token":      s.Token,
		"user_id":    s.UserID,
		"expires":    s.ExpiresAt,
		"user_agent": s.UserAgent,
		"ip_address": optional(s.IPAddress),
		"created_at": s.CreatedAt,
	}
	if _, err := r.conn.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SessionPostgresRepository) GetByToken(ctx context.Context, token string) (entities.Session, error) {
	const query = `
	SELECT s.token, s.user_id, u.email, u.role, s.user_agent, s.ip_address, s.expires, s.created_at
	FROM sessions s
	JOIN users u ON u.id = s.user_id
	WHERE s.token = @token`

	var (
		s    entities.Session
		role string
		ip   *string
	)
	err := r.conn.QueryRow(ctx, query, pgx.NamedArgs{"token": token}).Scan(
		&s.Token, &s.UserID, &s.Email, &role, &s.UserAgent, &ip, &s.ExpiresAt, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	s.Role = entities.Role(role)
	s.IPAddress = nullableString(ip)
	s.ExpiresAt = s.ExpiresAt.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	return s, nil
}

func (r *SessionPostgresRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.conn.Exec(ctx, `DELETE FROM sessions WHERE token = @token`, pgx.NamedArgs{"token": token}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionPostgresRepository) DeleteByUserID(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.conn.Query(ctx, `DELETE FROM sessions WHERE user_id = @user_id RETURNING token`, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user sessions: %w", err)
	}
	tokens, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect revoked sessions: %w", err)
	}
	return tokens, nil
}
