package handlers

import (
	"errors"
	"net/http"
	"time"

	request "logistica_cotizaciones/internal/adapter/http/dto/request"
	response "logistica_cotizaciones/internal/adapter/http/dto/response"
	"logistica_cotizaciones/internal/adapter/http/middleware"
	"logistica_cotizaciones/internal/usecase"
	"logistica_cotizaciones/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	logger  *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, logger: logger}
}

// Login godoc
// @Summary  Open a session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "Credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Validate() != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), usecase.LoginInput{
		Email:     payload.NormalizedEmail(),
		Password:  payload.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		writeError(c, h.logger, mapAuthError(err))
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, result.Token, maxAge, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, response.NewLoginResponse(result.Token, result.ExpiresAt, result.User))
}

// Register godoc
// @Summary  Sign up and receive a verification link
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.RegisterRequest true "Account"
// @Success  201 {object} response.RegisterResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ToRegistration())
	if err != nil {
		writeError(c, h.logger, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.RegisterResponse{
		Message: "Account created, check your email to verify it",
		Email:   user.Email,
	})
}

// VerifyEmail godoc
// @Summary  Confirm an email address
// @Tags     auth
// @Produce  json
// @Param    token query string true "Verification token"
// @Success  200 {object} response.UserResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	user, err := h.usecase.VerifyEmail(c.Request.Context(), c.Query("token"))
	if err != nil {
		writeError(c, h.logger, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// ResendVerification godoc
// @Summary  Issue a fresh verification link
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.ResendVerificationRequest true "Email"
// @Success  200 {object} response.MessageResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var payload request.ResendVerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := h.usecase.ResendVerification(c.Request.Context(), payload.Email); err != nil {
		writeError(c, h.logger, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Verification email sent"})
}

// Logout godoc
// @Summary  Close the current session
// @Tags     auth
// @Success  204
// @Failure  401 {object} pkg.HTTPError
// @Security Bearer
// @Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		writeError(c, h.logger, mapAuthError(err))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary  Account of the caller
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.UserResponse
// @Failure  401 {object} pkg.HTTPError
// @Security Bearer
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	user, err := h.usecase.Me(c.Request.Context(), actor)
	if err != nil {
		writeError(c, h.logger, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionInvalid):
		return pkg.NewDomainErrorSimple("SESSION_INVALID", "Session expired or invalid", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmailNotVerified):
		return pkg.NewDomainErrorSimple("EMAIL_NOT_VERIFIED", "Email address not verified", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAccountInactive):
		return pkg.NewDomainErrorSimple("ACCOUNT_INACTIVE", "Account is inactive", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordMismatch):
		return pkg.NewDomainErrorSimple("PASSWORD_MISMATCH", "Passwords do not match", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVerificationTokenInvalid):
		return pkg.NewDomainErrorSimple("VERIFICATION_TOKEN_INVALID", "Verification link expired or invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyVerified):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_VERIFIED", "Email already verified", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return mapKind(err)
	}
}
