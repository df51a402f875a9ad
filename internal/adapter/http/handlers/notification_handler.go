package handlers

import (
	"errors"
	"net/http"

	response "logistica_cotizaciones/internal/adapter/http/dto/response"
	"logistica_cotizaciones/internal/usecase"
	"logistica_cotizaciones/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	logger  *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{usecase: uc, logger: logger}
}

// List godoc
// @Summary  Most recent notifications of the caller
// @Tags     notifications
// @Produce  json
// @Success  200 {object} response.NotificationListResponse
// @Security Bearer
// @Router   /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		writeError(c, h.logger, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// MarkRead godoc
// @Summary  Mark one notification as read
// @Tags     notifications
// @Produce  json
// @Param    id path string true "Notification ID"
// @Success  200 {object} response.NotificationResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	n, err := h.usecase.MarkRead(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, h.logger, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

// MarkAllRead godoc
// @Summary  Mark every notification of the caller as read
// @Tags     notifications
// @Produce  json
// @Success  200 {object} response.MarkAllReadResponse
// @Security Bearer
// @Router   /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	updated, err := h.usecase.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		writeError(c, h.logger, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.MarkAllReadResponse{Updated: updated})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotNotificationOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Notification belongs to another user", http.StatusForbidden)
	default:
		return mapKind(err)
	}
}
