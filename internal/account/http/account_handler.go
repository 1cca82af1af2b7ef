// Package http provides HTTP handlers for media service account management.
// Every handler acts on behalf of the authenticated user; ownership is enforced by the use case.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/mediavault/internal/account/http/dto"
	accountUseCase "github.com/allisson/mediavault/internal/account/usecase"
	authHTTP "github.com/allisson/mediavault/internal/auth/http"
	"github.com/allisson/mediavault/internal/httputil"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	accountUseCase accountUseCase.AccountUseCase
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountUseCase accountUseCase.AccountUseCase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// ListHandler lists the caller's accounts, newest first.
// GET /v1/accounts?offset=0&limit=50
// Returns 200 OK with account metadata.
func (h *AccountHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	accounts, err := h.accountUseCase.List(
		c.Request.Context(),
		authHTTP.CallerID(c.Request.Context()),
		offset,
		limit,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountsToListResponse(accounts))
}

// CreateHandler stores a new account with encrypted credentials.
// POST /v1/accounts
// Returns 201 Created with account metadata.
func (h *AccountHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	account, err := h.accountUseCase.Create(
		c.Request.Context(),
		authHTTP.CallerID(c.Request.Context()),
		req.ToInput(),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAccountToResponse(account))
}

// GetHandler returns one account.
// GET /v1/accounts/:id
func (h *AccountHandler) GetHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountUseCase.Get(c.Request.Context(), accountID, authHTTP.CallerID(c.Request.Context()))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountToResponse(account))
}

// UpdateHandler applies a partial update.
// PATCH /v1/accounts/:id
func (h *AccountHandler) UpdateHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	account, err := h.accountUseCase.Update(
		c.Request.Context(),
		accountID,
		authHTTP.CallerID(c.Request.Context()),
		req.ToInput(),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountToResponse(account))
}

// DeleteHandler removes an account.
// DELETE /v1/accounts/:id
// Returns 204 No Content.
func (h *AccountHandler) DeleteHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}

	if err := h.accountUseCase.Delete(c.Request.Context(), accountID, authHTTP.CallerID(c.Request.Context())); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// RevealCredentialsHandler returns the decrypted key pair of an account.
// GET /v1/accounts/:id/credentials
// Returns 403 when credential reveal is disabled.
func (h *AccountHandler) RevealCredentialsHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}

	creds, err := h.accountUseCase.RevealCredentials(
		c.Request.Context(),
		accountID,
		authHTTP.CallerID(c.Request.Context()),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.MapCredentialsToResponse(creds))
}

func (h *AccountHandler) parseAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid account ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return accountID, true
}
