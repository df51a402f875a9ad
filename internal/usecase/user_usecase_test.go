package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"
	mock_interfaces "logistica_cotizaciones/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	userAdmin  = entities.Actor{UserID: 1, Role: entities.RoleAdmin, Email: "admin@logistica.pe"}
	userClient = entities.Actor{UserID: 7, Role: entities.RoleUser, Email: "ana@cliente.pe"}
)

type userFixture struct {
	users    *mock_interfaces.MockIUserRepository
	sessions *mock_interfaces.MockISessionRepository
	hasher   *mock_interfaces.MockIPasswordHasher
	uc       *UserUseCase
	now      time.Time
}

func newUserFixture(t *testing.T) *userFixture {
	ctrl := gomock.NewController(t)
	f := &userFixture{
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		sessions: mock_interfaces.NewMockISessionRepository(ctrl),
		hasher:   mock_interfaces.NewMockIPasswordHasher(ctrl),
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.uc = NewUserUseCase(f.users, f.sessions, f.hasher, zap.NewNop())
	f.uc.now = func() time.Time { return f.now }
	return f
}

func TestUserUseCase_AdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture(t)
	first := "Rosa"

	calls := map[string]func() error{
		"list":       func() error { _, err := f.uc.ListUsers(ctx, userClient, entities.UserFilter{}); return err },
		"create":     func() error { _, err := f.uc.CreateUser(ctx, userClient, entities.NewAccount{}); return err },
		"update":     func() error { _, err := f.uc.UpdateUser(ctx, userClient, 3, entities.UserProfileUpdate{FirstName: &first}); return err },
		"deactivate": func() error { _, err := f.uc.DeactivateUser(ctx, userClient, 3); return err },
	}
	for name, call := range calls {
		if err := call(); !errors.Is(err, ErrAdminRequired) {
			t.Fatalf("%s: expected ErrAdminRequired, got %v", name, err)
		}
	}
}

func TestUserUseCase_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown role", func(t *testing.T) {
		f := newUserFixture(t)
		_, err := f.uc.ListUsers(ctx, userAdmin, entities.UserFilter{Role: "root"})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("normalizes filter", func(t *testing.T) {
		f := newUserFixture(t)
		want := entities.UserFilter{Search: "quispe", Role: entities.RoleInactive}
		f.users.EXPECT().List(gomock.Any(), want).Return([]entities.User{{ID: 4}}, nil)

		got, err := f.uc.ListUsers(ctx, userAdmin, entities.UserFilter{Search: " quispe ", Role: "Inactivo"})
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %v %v", got, err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		if _, err := f.uc.ListUsers(ctx, userAdmin, entities.UserFilter{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestUserUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()
	account := func() entities.NewAccount {
		return entities.NewAccount{
			Email:    "Rosa@Puno.pe",
			Password: "Segura#2026",
			Profile:  entities.UserProfile{FirstName: "Rosa", LastName: "Mamani", CompanyName: "Puno Cargo", Phone: "051 365 000"},
		}
	}

	t.Run("weak password", func(t *testing.T) {
		f := newUserFixture(t)
		in := account()
		in.Password = "corta"
		if _, err := f.uc.CreateUser(ctx, userAdmin, in); !errors.Is(err, entities.ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newUserFixture(t)
		in := account()
		in.Email = "rosa"
		if _, err := f.uc.CreateUser(ctx, userAdmin, in); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newUserFixture(t)
		f.hasher.EXPECT().Hash(gomock.Any()).Return("salt:hash", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrDuplicateEmail)
		if _, err := f.uc.CreateUser(ctx, userAdmin, account()); !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("creates verified account", func(t *testing.T) {
		f := newUserFixture(t)
		f.hasher.EXPECT().Hash("Segura#2026").Return("salt:hash", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, u entities.User, _ *entities.EmailVerification) (entities.User, error) {
				if u.Email != "rosa@puno.pe" || !u.EmailVerified || u.Role != entities.RoleUser || !u.CreatedAt.Equal(f.now) {
					t.Fatalf("unexpected user: %+v", u)
				}
				u.ID = 30
				return u, nil
			})

		u, err := f.uc.CreateUser(ctx, userAdmin, account())
		if err != nil || u.ID != 30 {
			t.Fatalf("unexpected result %+v %v", u, err)
		}
	})
}

func TestUserUseCase_UpdateUser(t *testing.T) {
	ctx := context.Background()
	phone := " 051 111 222 "

	t.Run("invalid id", func(t *testing.T) {
		f := newUserFixture(t)
		if _, err := f.uc.UpdateUser(ctx, userAdmin, 0, entities.UserProfileUpdate{Phone: &phone}); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("empty update", func(t *testing.T) {
		f := newUserFixture(t)
		if _, err := f.uc.UpdateUser(ctx, userAdmin, 3, entities.UserProfileUpdate{}); !errors.Is(err, entities.ErrEmptyProfileUpdate) {
			t.Fatalf("expected ErrEmptyProfileUpdate, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.EXPECT().UpdateProfile(gomock.Any(), int64(3), gomock.Any()).Return(entities.User{}, nil)
		if _, err := f.uc.UpdateUser(ctx, userAdmin, 3, entities.UserProfileUpdate{Phone: &phone}); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("writes trimmed fields", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.EXPECT().UpdateProfile(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, upd entities.UserProfileUpdate) (entities.User, error) {
				if upd.Phone == nil || *upd.Phone != "051 111 222" || upd.FirstName != nil {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.User{ID: 3, Phone: *upd.Phone}, nil
			})

		u, err := f.uc.UpdateUser(ctx, userAdmin, 3, entities.UserProfileUpdate{Phone: &phone})
		if err != nil || u.Phone != "051 111 222" {
			t.Fatalf("unexpected result %+v %v", u, err)
		}
	})
}

func TestUserUseCase_DeactivateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("self", func(t *testing.T) {
		f := newUserFixture(t)
		if _, err := f.uc.DeactivateUser(ctx, userAdmin, userAdmin.UserID); !errors.Is(err, ErrSelfDeactivation) {
			t.Fatalf("expected ErrSelfDeactivation, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.EXPECT().SetRole(gomock.Any(), int64(9), entities.RoleInactive).Return(entities.User{}, nil)
		if _, err := f.uc.DeactivateUser(ctx, userAdmin, 9); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("sets role and revokes sessions", func(t *testing.T) {
		f := newUserFixture(t)
		gomock.InOrder(
			f.users.EXPECT().SetRole(gomock.Any(), int64(7), entities.RoleInactive).
				Return(entities.User{ID: 7, Role: entities.RoleInactive}, nil),
			f.sessions.EXPECT().DeleteByUserID(gomock.Any(), int64(7)).Return([]string{"tok-a", "tok-b"}, nil),
		)

		u, err := f.uc.DeactivateUser(ctx, userAdmin, 7)
		if err != nil || u.Role != entities.RoleInactive {
			t.Fatalf("unexpected result %+v %v", u, err)
		}
	})

	t.Run("revocation failure is not fatal", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.EXPECT().SetRole(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{ID: 7, Role: entities.RoleInactive}, nil)
		f.sessions.EXPECT().DeleteByUserID(gomock.Any(), int64(7)).Return(nil, errors.New("redis down"))

		if _, err := f.uc.DeactivateUser(ctx, userAdmin, 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	profile := entities.UserProfile{FirstName: "Admin", LastName: "Sistema"}

	t.Run("creates verified admin", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), "admin@logistica.pe").Return(entities.User{}, nil)
		f.hasher.EXPECT().Hash("Admin#2026").Return("salt:hash", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, u entities.User, _ *entities.EmailVerification) (entities.User, error) {
				if u.Role != entities.RoleAdmin || !u.EmailVerified || u.Email != "admin@logistica.pe" {
					t.Fatalf("unexpected admin: %+v", u)
				}
				u.ID = 1
				return u, nil
			})

		created, err := f.uc.EnsureAdmin(ctx, " Admin@Logistica.pe ", "Admin#2026", profile)
		if err != nil || !created {
			t.Fatalf("expected admin to be created, got %v %v", created, err)
		}
	})

	t.Run("existing account is kept", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{ID: 1, Role: entities.RoleAdmin}, nil)

		created, err := f.uc.EnsureAdmin(ctx, "admin@logistica.pe", "Admin#2026", profile)
		if err != nil || created {
			t.Fatalf("expected no-op, got %v %v", created, err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		f := newUserFixture(t)
		if _, err := f.uc.EnsureAdmin(ctx, "admin@logistica.pe", "admin", profile); !errors.Is(err, entities.ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})
}
