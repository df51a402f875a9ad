package routes

import (
	"logistica_cotizaciones/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, authenticated gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)
	auth.GET("/verify-email", h.VerifyEmail)
	auth.POST("/resend-verification", h.ResendVerification)
	auth.POST("/logout", authenticated, h.Logout)
	auth.GET("/me", authenticated, h.Me)
}
