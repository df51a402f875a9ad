package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IAuthUseCase manages self-service accounts and bearer sessions.
type IAuthUseCase interface {
	Register(ctx context.Context, in entities.Registration) (entities.User, error)
	VerifyEmail(ctx context.Context, token string) (entities.User, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, in LoginInput) (LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token, userAgent string) (entities.Actor, error)
	Me(ctx context.Context, actor entities.Actor) (entities.User, error)
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

// AuthSettings tunes session and verification token issuance.
type AuthSettings struct {
	SessionTTL      time.Duration
	VerificationTTL time.Duration
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	sessions interfaces.ISessionRepository
	hasher   interfaces.IPasswordHasher
	mailer   interfaces.IVerificationMailer
	logger   *zap.Logger

	ttl             time.Duration
	verificationTTL time.Duration
	now             func() time.Time
	newToken        func() (string, error)
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	sessions interfaces.ISessionRepository,
	hasher interfaces.IPasswordHasher,
	mailer interfaces.IVerificationMailer,
	logger *zap.Logger,
	settings AuthSettings,
) *AuthUseCase {
	ttl := settings.SessionTTL
	if ttl <= 0 {
		ttl = entities.SessionTTL
	}
	verificationTTL := settings.VerificationTTL
	if verificationTTL <= 0 {
		verificationTTL = entities.VerificationTTL
	}
	return &AuthUseCase{
		users:           users,
		sessions:        sessions,
		hasher:          hasher,
		mailer:          mailer,
		logger:          logger,
		ttl:             ttl,
		verificationTTL: verificationTTL,
		now:             func() time.Time { return time.Now().UTC() },
		newToken:        newSessionToken,
	}
}

// Register creates an unverified account and sends its verification link. A
// failed delivery does not undo the registration; the user can ask for a
// new link.
func (u *AuthUseCase) Register(ctx context.Context, in entities.Registration) (entities.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if err := in.Profile.Validate(); err != nil {
		return entities.User{}, err
	}
	if err := entities.ValidatePassword(in.Password); err != nil {
		return entities.User{}, err
	}
	if in.Password != in.ConfirmPassword {
		return entities.User{}, ErrPasswordMismatch
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, fmt.Errorf("get user: %w", err)
	}
	if existing.ID != 0 {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}
	verification, err := u.newVerification()
	if err != nil {
		return entities.User{}, err
	}

	user, err := u.users.Create(ctx, entities.NewUser(email, hash, in.Profile, false, u.now()), &verification)
	if errors.Is(err, interfaces.ErrDuplicateEmail) {
		return entities.User{}, ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("create user: %w", err)
	}
	u.logger.Info("auth usecase register ok", zap.Int64("user_id", user.ID))

	if err := u.mailer.SendVerification(ctx, user.Email, verification.Token); err != nil {
		u.logger.Warn("auth usecase register verification not sent", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	return user, nil
}

func (u *AuthUseCase) VerifyEmail(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrVerificationTokenInvalid
	}
	user, err := u.users.VerifyEmail(ctx, token, u.now())
	if err != nil {
		return entities.User{}, fmt.Errorf("verify email: %w", err)
	}
	if user.ID == 0 {
		return entities.User{}, ErrVerificationTokenInvalid
	}
	u.logger.Info("auth usecase verify email ok", zap.Int64("user_id", user.ID))
	return user, nil
}

// ResendVerification replaces the outstanding token of an unverified account.
func (u *AuthUseCase) ResendVerification(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user.ID == 0 {
		return ErrUserNotFound
	}
	if user.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	verification, err := u.newVerification()
	if err != nil {
		return err
	}
	if err := u.users.SetVerification(ctx, user.ID, verification); err != nil {
		return fmt.Errorf("set verification: %w", err)
	}
	if err := u.mailer.SendVerification(ctx, user.Email, verification.Token); err != nil {
		u.logger.Error("auth usecase resend verification failed", zap.Int64("user_id", user.ID), zap.Error(err))
		return ErrVerificationNotSent
	}
	return nil
}

func (u *AuthUseCase) newVerification() (entities.EmailVerification, error) {
	token, err := u.newToken()
	if err != nil {
		return entities.EmailVerification{}, fmt.Errorf("generate verification token: %w", err)
	}
	return entities.EmailVerification{Token: token, ExpiresAt: u.now().Add(u.verificationTTL)}, nil
}

func (u *AuthUseCase) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return LoginResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("get user: %w", err)
	}
	if user.ID == 0 {
		return LoginResult{}, ErrInvalidCredentials
	}
	ok, err := u.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		u.logger.Warn("auth usecase login bad hash", zap.Int64("user_id", user.ID), zap.Error(err))
		return LoginResult{}, ErrInvalidCredentials
	}
	if !ok {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return LoginResult{}, ErrEmailNotVerified
	}
	if !user.IsActive() {
		return LoginResult{}, ErrAccountInactive
	}

	token, err := u.newToken()
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate session token: %w", err)
	}
	now := u.now()
	s := entities.Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		UserAgent: in.UserAgent,
		IPAddress: in.IPAddress,
		ExpiresAt: now.Add(u.ttl),
		CreatedAt: now,
	}
	if err := u.sessions.Create(ctx, s); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	u.logger.Info("auth usecase login ok", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return LoginResult{Token: token, ExpiresAt: s.ExpiresAt, User: user}, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := u.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token. The session must be unexpired and
// presented by the same user agent that created it.
func (u *AuthUseCase) Authenticate(ctx context.Context, token, userAgent string) (entities.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Actor{}, ErrSessionInvalid
	}

	s, err := u.sessions.GetByToken(ctx, token)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("get session: %w", err)
	}
	if s.Token == "" {
		return entities.Actor{}, ErrSessionInvalid
	}
	if s.Expired(u.now()) {
		if err := u.sessions.Delete(ctx, token); err != nil {
			u.logger.Warn("auth usecase expired session cleanup failed", zap.Int64("user_id", s.UserID), zap.Error(err))
		}
		return entities.Actor{}, ErrSessionInvalid
	}
	if s.UserAgent != "" && s.UserAgent != userAgent {
		u.logger.Warn("auth usecase user agent mismatch", zap.Int64("user_id", s.UserID))
		return entities.Actor{}, ErrSessionInvalid
	}
	if s.Role == entities.RoleInactive {
		return entities.Actor{}, ErrAccountInactive
	}
	return s.Actor(), nil
}

func (u *AuthUseCase) Me(ctx context.Context, actor entities.Actor) (entities.User, error) {
	user, err := u.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return entities.User{}, fmt.Errorf("get user: %w", err)
	}
	if user.ID == 0 {
		return entities.User{}, ErrSessionInvalid
	}
	return user, nil
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
