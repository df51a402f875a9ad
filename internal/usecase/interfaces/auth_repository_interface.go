package interfaces

import (
	"context"
	"errors"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
)

// ErrDuplicateEmail is returned by Create when the email is already
// registered.
var ErrDuplicateEmail = errors.New("duplicate user email")

// IUserRepository persists accounts. Lookups and updates return a zero User
// (ID == 0) when the row does not exist.
type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByID(ctx context.Context, id int64) (entities.User, error)
	// Create inserts the account, with an outstanding verification token when
	// v is not nil.
	Create(ctx context.Context, u entities.User, v *entities.EmailVerification) (entities.User, error)
	// VerifyEmail consumes an unexpired token and marks its owner verified.
	VerifyEmail(ctx context.Context, token string, now time.Time) (entities.User, error)
	SetVerification(ctx context.Context, userID int64, v entities.EmailVerification) error
	List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error)
	UpdateProfile(ctx context.Context, id int64, upd entities.UserProfileUpdate) (entities.User, error)
	SetRole(ctx context.Context, id int64, role entities.Role) (entities.User, error)
}

// ISessionRepository stores bearer sessions. Missing tokens come back as a
// zero Session (Token == "").
type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) error
	GetByToken(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
	// DeleteByUserID revokes every session of a user and returns the revoked
	// tokens.
	DeleteByUserID(ctx context.Context, userID int64) ([]string, error)
}

// IPasswordHasher verifies stored password hashes.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// IVerificationMailer delivers email verification links.
type IVerificationMailer interface {
	SendVerification(ctx context.Context, email, token string) error
}
