package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IUserUseCase is the admin user management surface.
type IUserUseCase interface {
	ListUsers(ctx context.Context, actor entities.Actor, filter entities.UserFilter) ([]entities.User, error)
	CreateUser(ctx context.Context, actor entities.Actor, in entities.NewAccount) (entities.User, error)
	UpdateUser(ctx context.Context, actor entities.Actor, id int64, upd entities.UserProfileUpdate) (entities.User, error)
	DeactivateUser(ctx context.Context, actor entities.Actor, id int64) (entities.User, error)
}

type UserUseCase struct {
	users    interfaces.IUserRepository
	sessions interfaces.ISessionRepository
	hasher   interfaces.IPasswordHasher
	logger   *zap.Logger
	now      func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(
	users interfaces.IUserRepository,
	sessions interfaces.ISessionRepository,
	hasher interfaces.IPasswordHasher,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *UserUseCase) ListUsers(ctx context.Context, actor entities.Actor, filter entities.UserFilter) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	if filter.Role != "" {
		role, ok := entities.ParseRole(string(filter.Role))
		if !ok {
			return nil, ErrInvalidRole
		}
		filter.Role = role
	}
	filter.Search = strings.TrimSpace(filter.Search)

	users, err := u.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (u *UserUseCase) CreateUser(ctx context.Context, actor entities.Actor, in entities.NewAccount) (entities.User, error) {
	if !actor.IsAdmin() {
		return entities.User{}, ErrAdminRequired
	}
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

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}
	user, err := u.users.Create(ctx, entities.NewUser(email, hash, in.Profile, true, u.now()), nil)
	if errors.Is(err, interfaces.ErrDuplicateEmail) {
		return entities.User{}, ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("create user: %w", err)
	}

	u.logger.Info("user usecase create ok", zap.Int64("user_id", user.ID), zap.Int64("admin_id", actor.UserID))
	return user, nil
}

func (u *UserUseCase) UpdateUser(ctx context.Context, actor entities.Actor, id int64, upd entities.UserProfileUpdate) (entities.User, error) {
	if !actor.IsAdmin() {
		return entities.User{}, ErrAdminRequired
	}
	if id <= 0 {
		return entities.User{}, ErrInvalidUserID
	}
	if err := upd.Validate(); err != nil {
		return entities.User{}, err
	}

	user, err := u.users.UpdateProfile(ctx, id, upd.Normalized())
	if err != nil {
		return entities.User{}, fmt.Errorf("update user: %w", err)
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	u.logger.Info("user usecase update ok", zap.Int64("user_id", user.ID), zap.Int64("admin_id", actor.UserID))
	return user, nil
}

// DeactivateUser sets the inactivo role and revokes the user's sessions. A
// failed revocation is logged; Authenticate still rejects inactive sessions
// read from the store.
func (u *UserUseCase) DeactivateUser(ctx context.Context, actor entities.Actor, id int64) (entities.User, error) {
	if !actor.IsAdmin() {
		return entities.User{}, ErrAdminRequired
	}
	if id <= 0 {
		return entities.User{}, ErrInvalidUserID
	}
	if id == actor.UserID {
		return entities.User{}, ErrSelfDeactivation
	}

	user, err := u.users.SetRole(ctx, id, entities.RoleInactive)
	if err != nil {
		return entities.User{}, fmt.Errorf("deactivate user: %w", err)
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}

	revoked, err := u.sessions.DeleteByUserID(ctx, user.ID)
	if err != nil {
		u.logger.Warn("user usecase session revoke failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	u.logger.Info("user usecase deactivate ok",
		zap.Int64("user_id", user.ID), zap.Int64("admin_id", actor.UserID), zap.Int("sessions_revoked", len(revoked)))
	return user, nil
}

// EnsureAdmin opens a verified admin account for email unless one is already
// registered. It reports whether an account was created. An existing account
// is left untouched.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, email, password string, profile entities.UserProfile) (bool, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return false, err
	}
	if err := entities.ValidatePassword(password); err != nil {
		return false, err
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if existing.ID != 0 {
		if existing.Role != entities.RoleAdmin {
			u.logger.Warn("user usecase bootstrap admin exists without admin role",
				zap.Int64("user_id", existing.ID), zap.String("role", string(existing.Role)))
		}
		return false, nil
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := entities.NewUser(email, hash, profile, true, u.now())
	admin.Role = entities.RoleAdmin
	created, err := u.users.Create(ctx, admin, nil)
	if errors.Is(err, interfaces.ErrDuplicateEmail) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	u.logger.Info("user usecase bootstrap admin created", zap.Int64("user_id", created.ID))
	return true, nil
}
