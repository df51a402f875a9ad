package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"logistica_cotizaciones/internal/adapter/http/dto/response"
	"logistica_cotizaciones/internal/adapter/http/handlers/mocks"
	"logistica_cotizaciones/internal/adapter/http/middleware"
	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newNotificationRouter(t *testing.T) (*gin.Engine, *mocks.MockINotificationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc, zap.NewNop())

	r := gin.New()
	g := r.Group("/v1/notifications", middleware.SetActor(clientActor))
	g.GET("", h.List)
	g.POST("/read-all", h.MarkAllRead)
	g.POST("/:id/read", h.MarkRead)
	return r, uc
}

func TestNotificationHandler_List(t *testing.T) {
	r, uc := newNotificationRouter(t)
	uc.EXPECT().List(gomock.Any(), clientActor).Return([]entities.Notification{
		{ID: "n-2", Title: "Actualización de Transporte"},
		{ID: "n-1", Title: "Cotización Respondida", Read: true},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/notifications", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got response.NotificationListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Unread != 1 || len(got.Notifications) != 2 {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "ok", want: http.StatusOK},
		{name: "not found", err: usecase.ErrNotificationNotFound, want: http.StatusNotFound},
		{name: "not owner", err: usecase.ErrNotNotificationOwner, want: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newNotificationRouter(t)
			uc.EXPECT().MarkRead(gomock.Any(), clientActor, "n-1").Return(entities.Notification{ID: "n-1", Read: true}, tc.err)

			if w := doJSON(r, http.MethodPost, "/v1/notifications/n-1/read", ""); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	r, uc := newNotificationRouter(t)
	uc.EXPECT().MarkAllRead(gomock.Any(), clientActor).Return(3, nil)

	w := doJSON(r, http.MethodPost, "/v1/notifications/read-all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got response.MarkAllReadResponse
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Updated != 3 {
		t.Fatalf("expected 3 updated, got %d", got.Updated)
	}
}
