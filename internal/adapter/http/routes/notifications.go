package routes

import (
	"logistica_cotizaciones/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathNotifications = "/notifications"

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler, authenticated gin.HandlerFunc) {
	notifications := rg.Group(PathNotifications, authenticated)
	{
		notifications.GET("", h.List)
		notifications.POST("/read-all", h.MarkAllRead)
		notifications.POST("/:id/read", h.MarkRead)
	}
}
