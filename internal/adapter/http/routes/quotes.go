package routes

import (
	"logistica_cotizaciones/internal/adapter/http/handlers"
	"logistica_cotizaciones/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathAdminQuotes = "/admin/quotes"
)

// Admin routes are gated twice: here and again in the use case.
func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler, authenticated gin.HandlerFunc) {
	quotes := rg.Group(PathQuotes, authenticated)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListMyQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.POST("/:id/accept", h.AcceptQuote)
		quotes.POST("/:id/transport", h.AddTransportUpdate)
		quotes.POST("/:id/respond", middleware.RequireAdmin(), h.RespondQuote)
		quotes.POST("/:id/complete", middleware.RequireAdmin(), h.CompleteTransport)
	}

	admin := rg.Group(PathAdminQuotes, authenticated, middleware.RequireAdmin())
	{
		admin.GET("", h.ListAllQuotes)
		admin.PUT("/:id/status", h.SetQuoteStatus)
	}
}
