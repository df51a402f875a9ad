package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "logistica_cotizaciones/internal/adapter/http/dto/request"
	response "logistica_cotizaciones/internal/adapter/http/dto/response"
	"logistica_cotizaciones/internal/usecase"
	"logistica_cotizaciones/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidUserID = pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user id", http.StatusBadRequest)

// UserHandler serves admin account management.
type UserHandler struct {
	usecase usecase.IUserUseCase
	logger  *zap.Logger
}

func NewUserHandler(uc usecase.IUserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{usecase: uc, logger: logger}
}

// List godoc
// @Summary  List accounts (admin)
// @Tags     admin
// @Produce  json
// @Param    search query string false "Email or name"
// @Param    role   query string false "admin, usuario, inactivo or all"
// @Success  200 {array} response.UserResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var query request.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	users, err := h.usecase.ListUsers(c.Request.Context(), actor, query.ToFilter())
	if err != nil {
		writeError(c, h.logger, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// Create godoc
// @Summary  Open a verified account (admin)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body request.CreateUserRequest true "Account"
// @Success  201 {object} response.UserResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.CreateUser(c.Request.Context(), actor, payload.ToNewAccount())
	if err != nil {
		writeError(c, h.logger, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Update godoc
// @Summary  Edit account contact data (admin)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path int true "User ID"
// @Param    body body request.UpdateUserRequest true "Fields to change"
// @Success  200 {object} response.UserResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /admin/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.UpdateUser(c.Request.Context(), actor, id, payload.ToUpdate())
	if err != nil {
		writeError(c, h.logger, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// Deactivate godoc
// @Summary  Deactivate an account and revoke its sessions (admin)
// @Tags     admin
// @Produce  json
// @Param    id path int true "User ID"
// @Success  200 {object} response.UserResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /admin/users/{id} [delete]
func (h *UserHandler) Deactivate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := h.usecase.DeactivateUser(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, h.logger, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidUserID.HTTPStatus, errInvalidUserID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errInvalidUserID
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrSelfDeactivation):
		return pkg.NewDomainErrorSimple("SELF_DEACTIVATION", "Admins cannot deactivate their own account", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email address", http.StatusBadRequest)
	default:
		return mapKind(err)
	}
}
