package middleware

import (
	"errors"
	"net/http"
	"strings"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase"
	"logistica_cotizaciones/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// SessionCookie is the cookie carrying the session token for browsers.
	SessionCookie = "auth_token"

	actorKey = "actor"
	tokenKey = "session_token"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errAdminOnly       = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
	errAuthUnavailable = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// Authenticate resolves the session token into an actor and aborts with 401
// when there is none.
func Authenticate(auth usecase.IAuthUseCase, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), token, c.Request.UserAgent())
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthenticated) || errors.Is(err, usecase.ErrForbidden) {
				c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
				return
			}
			logger.Error("auth middleware session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(errAuthUnavailable.HTTPStatus, errAuthUnavailable.ToHTTPError())
			return
		}

		c.Set(actorKey, actor)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

// TokenFromRequest reads the bearer token, falling back to the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, found := strings.Cut(h, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// TokenFrom returns the token Authenticate accepted.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// SetActor is used by tests that mount handlers without the session lookup.
func SetActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}
