package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"logistica_cotizaciones/internal/adapter/http/handlers/mocks"
	"logistica_cotizaciones/internal/adapter/http/middleware"
	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newUserRouter(t *testing.T, actor entities.Actor) (*gin.Engine, *mocks.MockIUserUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc, zap.NewNop())

	r := gin.New()
	g := r.Group("/v1/admin/users", middleware.SetActor(actor))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Deactivate)
	return r, uc
}

func TestUserHandler_List(t *testing.T) {
	t.Run("passes search and role", func(t *testing.T) {
		r, uc := newUserRouter(t, adminActor)
		want := entities.UserFilter{Search: "quispe", Role: "admin"}
		uc.EXPECT().ListUsers(gomock.Any(), adminActor, want).
			Return([]entities.User{{ID: 3, Email: "rosa@andes.pe", Role: entities.RoleAdmin}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/admin/users?search=+quispe+&role=admin", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0]["email"] != "rosa@andes.pe" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("all disables the role filter", func(t *testing.T) {
		r, uc := newUserRouter(t, adminActor)
		uc.EXPECT().ListUsers(gomock.Any(), adminActor, entities.UserFilter{}).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/admin/users?role=all", "")
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		r, uc := newUserRouter(t, adminActor)
		uc.EXPECT().ListUsers(gomock.Any(), adminActor, gomock.Any()).Return(nil, usecase.ErrInvalidRole)

		if w := doJSON(r, http.MethodGet, "/v1/admin/users?role=root", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client", func(t *testing.T) {
		r, uc := newUserRouter(t, clientActor)
		uc.EXPECT().ListUsers(gomock.Any(), clientActor, gomock.Any()).Return(nil, usecase.ErrAdminRequired)

		if w := doJSON(r, http.MethodGet, "/v1/admin/users", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestUserHandler_Create(t *testing.T) {
	body := `{"first_name":"Rosa","last_name":"Mamani","company_name":"Puno Cargo","phone":"051 365 000",
		"email":"rosa@puno.pe","password":"Segura#2026"}`

	t.Run("created", func(t *testing.T) {
		r, uc := newUserRouter(t, adminActor)
		uc.EXPECT().CreateUser(gomock.Any(), adminActor, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, in entities.NewAccount) (entities.User, error) {
				if in.Email != "rosa@puno.pe" || in.Profile.Phone != "051 365 000" {
					t.Fatalf("unexpected account: %+v", in)
				}
				return entities.User{ID: 12, Email: in.Email, Role: entities.RoleUser, EmailVerified: true}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/admin/users", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "Segura") {
			t.Fatalf("password must not be echoed")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, uc := newUserRouter(t, adminActor)
		uc.EXPECT().CreateUser(gomock.Any(), adminActor, gomock.Any()).Return(entities.User{}, usecase.ErrEmailTaken)

		if w := doJSON(r, http.MethodPost, "/v1/admin/users", body); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newUserRouter(t, adminActor)
		if w := doJSON(r, http.MethodPost, "/v1/admin/users", `{"email":"rosa@puno.pe"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		r, uc := newUserRouter(t, adminActor)
		uc.EXPECT().UpdateUser(gomock.Any(), adminActor, int64(12), gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, _ int64, upd entities.UserProfileUpdate) (entities.User, error) {
				if upd.Phone == nil || *upd.Phone != "051 111 222" || upd.FirstName != nil {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.User{ID: 12, Phone: *upd.Phone}, nil
			})

		if w := doJSON(r, http.MethodPut, "/v1/admin/users/12", `{"phone":"051 111 222"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"non numeric id", "/v1/admin/users/abc", nil, http.StatusBadRequest},
		{"zero id", "/v1/admin/users/0", nil, http.StatusBadRequest},
		{"missing user", "/v1/admin/users/99", usecase.ErrUserNotFound, http.StatusNotFound},
		{"empty update", "/v1/admin/users/12", entities.ErrEmptyProfileUpdate, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newUserRouter(t, adminActor)
			if tc.err != nil {
				uc.EXPECT().UpdateUser(gomock.Any(), adminActor, gomock.Any(), gomock.Any()).Return(entities.User{}, tc.err)
			}
			if w := doJSON(r, http.MethodPut, tc.path, `{}`); w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestUserHandler_Deactivate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deactivated", nil, http.StatusOK},
		{"self", usecase.ErrSelfDeactivation, http.StatusConflict},
		{"missing", usecase.ErrUserNotFound, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newUserRouter(t, adminActor)
			uc.EXPECT().DeactivateUser(gomock.Any(), adminActor, int64(5)).
				Return(entities.User{ID: 5, Role: entities.RoleInactive}, tc.err)

			w := doJSON(r, http.MethodDelete, "/v1/admin/users/5", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.err == nil && !strings.Contains(w.Body.String(), `"role":"inactivo"`) {
				t.Fatalf("unexpected body %s", w.Body.String())
			}
		})
	}
}
