package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/infrastructure/database"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const usersEmailConstraint = "users_email_key"

const userColumns = `id, email, password_hash, first_name, last_name, phone, company_name,
	       role, email_verified, created_at`

const selectUser = `
	SELECT ` + userColumns + `
	FROM users`

// UserPostgresRepository persists accounts in the users table.
type UserPostgresRepository struct {
	conn database.PostgresPool
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(conn database.PostgresPool) *UserPostgresRepository {
	return &UserPostgresRepository{conn: conn}
}

func (r *UserPostgresRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.get(ctx, selectUser+` WHERE lower(email) = lower(@email)`, pgx.NamedArgs{"email": email})
}

func (r *UserPostgresRepository) GetByID(ctx context.Context, id int64) (entities.User, error) {
	return r.get(ctx, selectUser+` WHERE id = @id`, pgx.NamedArgs{"id": id})
}

func (r *UserPostgresRepository) Create(ctx context.Context, u entities.User, v *entities.EmailVerification) (entities.User, error) {
	const query = `
	INSERT INTO users (
		email, password_hash, first_name, last_name, phone, company_name, role,
		email_verified, email_verification_token, email_verification_token_expires, created_at
	) VALUES (
		@email, @password_hash, @first_name, @last_name, @phone, @company_name, @role,
		@email_verified, @token, @token_expires, @created_at
	)
	RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"email":          u.Email,
		"password_hash":  u.PasswordHash,
		"first_name":     u.FirstName,
		"last_name":      u.LastName,
		"phone":          optional(u.Phone),
		"company_name":   optional(u.CompanyName),
		"role":           string(u.Role),
		"email_verified": u.EmailVerified,
		"token":          nil,
		"token_expires":  nil,
		"created_at":     u.CreatedAt,
	}
	if v != nil {
		args["token"] = v.Token
		args["token_expires"] = v.ExpiresAt
	}

	created, err := scanUser(r.conn.QueryRow(ctx, query, args))
	if isUniqueViolation(err, usersEmailConstraint) {
		return entities.User{}, interfaces.ErrDuplicateEmail
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return created, nil
}

func (r *UserPostgresRepository) VerifyEmail(ctx context.Context, token string, now time.Time) (entities.User, error) {
	const query = `
	UPDATE users
	SET email_verified = TRUE, email_verification_token = NULL, email_verification_token_expires = NULL
	WHERE email_verification_token = @token AND email_verification_token_expires > @now
	RETURNING ` + userColumns

	return r.get(ctx, query, pgx.NamedArgs{"token": token, "now": now})
}

func (r *UserPostgresRepository) SetVerification(ctx context.Context, userID int64, v entities.EmailVerification) error {
	const query = `
	UPDATE users
	SET email_verification_token = @token, email_verification_token_expires = @expires
	WHERE id = @id`

	args := pgx.NamedArgs{"id": userID, "token": v.Token, "expires": v.ExpiresAt}
	if _, err := r.conn.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("failed to set verification token: %w", err)
	}
	return nil
}

// List returns accounts newest first. Search matches email, first or last
// name case-insensitively.
func (r *UserPostgresRepository) List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	query := selectUser + `
	WHERE (@role::text = '' OR role = @role::text)
	  AND (@search::text = ''
	       OR email ILIKE '%' || @search::text || '%'
	       OR first_name ILIKE '%' || @search::text || '%'
	       OR last_name ILIKE '%' || @search::text || '%')
	ORDER BY created_at DESC, id DESC`

	rows, err := r.conn.Query(ctx, query, pgx.NamedArgs{"role": string(filter.Role), "search": filter.Search})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []entities.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// UpdateProfile writes only the non-nil fields of upd.
func (r *UserPostgresRepository) UpdateProfile(ctx context.Context, id int64, upd entities.UserProfileUpdate) (entities.User, error) {
	const query = `
	UPDATE users SET
		first_name = COALESCE(@first_name, first_name),
		last_name = COALESCE(@last_name, last_name),
		company_name = COALESCE(@company_name, company_name),
		phone = COALESCE(@phone, phone)
	WHERE id = @id
	RETURNING ` + userColumns

	return r.get(ctx, query, pgx.NamedArgs{
		"id":           id,
		"first_name":   upd.FirstName,
		"last_name":    upd.LastName,
		"company_name": upd.CompanyName,
		"phone":        upd.Phone,
	})
}

func (r *UserPostgresRepository) SetRole(ctx context.Context, id int64, role entities.Role) (entities.User, error) {
	const query = `UPDATE users SET role = @role WHERE id = @id RETURNING ` + userColumns
	return r.get(ctx, query, pgx.NamedArgs{"id": id, "role": string(role)})
}

func (r *UserPostgresRepository) get(ctx context.Context, query string, args pgx.NamedArgs) (entities.User, error) {
	u, err := scanUser(r.conn.QueryRow(ctx, query, args))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (entities.User, error) {
	var (
		u       entities.User
		role    string
		phone   *string
		company *string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &phone, &company,
		&role, &u.EmailVerified, &u.CreatedAt,
	)
	if err != nil {
		return entities.User{}, err
	}
	u.Role = entities.Role(role)
	u.Phone = nullableString(phone)
	u.CompanyName = nullableString(company)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
