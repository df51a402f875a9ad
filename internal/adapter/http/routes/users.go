package routes

import (
	"logistica_cotizaciones/internal/adapter/http/handlers"
	"logistica_cotizaciones/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAdminUsers = "/admin/users"

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler, authenticated gin.HandlerFunc) {
	users := rg.Group(PathAdminUsers, authenticated, middleware.RequireAdmin())
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Deactivate)
	}
}
