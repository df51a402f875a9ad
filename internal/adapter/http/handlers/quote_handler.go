package handlers

import (
	"errors"
	"io"
	"net/http"

	request "logistica_cotizaciones/internal/adapter/http/dto/request"
	response "logistica_cotizaciones/internal/adapter/http/dto/response"
	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase"
	"logistica_cotizaciones/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the quote lifecycle over HTTP. Authorization is
// decided by the use case from the actor the auth middleware resolved.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	logger  *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, logger: logger}
}

// CreateQuote godoc
// @Summary  Request a freight quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.CreateQuoteRequest true "Shipment"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), actor, payload.ToShipment())
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListMyQuotes godoc
// @Summary  Quotes of the caller, newest first
// @Tags     quotes
// @Produce  json
// @Success  200 {array} response.QuoteResponse
// @Security Bearer
// @Router   /quotes [get]
func (h *QuoteHandler) ListMyQuotes(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	quotes, err := h.usecase.ListQuotesForUser(c.Request.Context(), actor)
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote godoc
// @Summary  Quote with its transport history
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteDetailsResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	details, err := h.usecase.GetQuoteDetails(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDetails(details))
}

// RespondQuote godoc
// @Summary  Price a quote (admin)
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id   path string true "Quote ID"
// @Param    body body request.RespondQuoteRequest true "Terms"
// @Success  200 {object} response.QuoteResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/{id}/respond [post]
func (h *QuoteHandler) RespondQuote(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var payload request.RespondQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RespondToQuote(c.Request.Context(), actor, c.Param("id"), payload.Amount(), payload.MensajeAdmin)
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// AcceptQuote godoc
// @Summary  Accept a priced quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/{id}/accept [post]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	quote, err := h.usecase.AcceptQuote(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// AddTransportUpdate godoc
// @Summary  Append a tracking event
// @Description Clients may only post an empty body, which confirms delivery.
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id   path string true "Quote ID"
// @Param    body body request.TransportUpdateRequest false "Event"
// @Success  201 {object} response.TransportUpdateResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/{id}/transport [post]
func (h *QuoteHandler) AddTransportUpdate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var payload request.TransportUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.AddTransportUpdate(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTransportUpdate(entry))
}

// CompleteTransport godoc
// @Summary  Close a transport as delivered (admin)
// @Tags     quotes
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/{id}/complete [post]
func (h *QuoteHandler) CompleteTransport(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	quote, err := h.usecase.CompleteTransport(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListAllQuotes godoc
// @Summary  List every quote (admin)
// @Tags     admin
// @Produce  json
// @Param    estado query string false "Status filter or all"
// @Param    search query string false "Reference or client email"
// @Success  200 {array} response.QuoteResponse
// @Security Bearer
// @Router   /admin/quotes [get]
func (h *QuoteHandler) ListAllQuotes(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var query request.QuoteListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quotes, err := h.usecase.ListAllQuotes(c.Request.Context(), actor, query.ToFilter())
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// SetQuoteStatus godoc
// @Summary  Override the status of a quote (admin)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string true "Quote ID"
// @Param    body body request.UpdateQuoteStatusRequest true "Status"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /admin/quotes/{id}/status [put]
func (h *QuoteHandler) SetQuoteStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SetQuoteStatus(c.Request.Context(), actor, c.Param("id"), payload.Estado)
	if err != nil {
		writeError(c, h.logger, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Invalid quote id", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotQuoteOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Quote belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrClientLabelNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Clients may only confirm transport completion", http.StatusForbidden)
	case errors.Is(err, entities.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote has not been accepted", http.StatusConflict)
	case errors.Is(err, entities.ErrQuoteFinished):
		return pkg.NewDomainErrorSimple("QUOTE_FINISHED", "Transport already finished", http.StatusConflict)
	case errors.Is(err, entities.ErrMissingClientConfirmation):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_CONFIRMATION", "Client has not confirmed delivery", http.StatusConflict)
	default:
		return mapKind(err)
	}
}
