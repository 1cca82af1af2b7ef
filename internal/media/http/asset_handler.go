// Package http provides HTTP handlers for the asset operations proxied to the media service.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/mediavault/internal/auth/http"
	"github.com/allisson/mediavault/internal/httputil"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	"github.com/allisson/mediavault/internal/media/http/dto"
	mediaUseCase "github.com/allisson/mediavault/internal/media/usecase"
	customValidation "github.com/allisson/mediavault/internal/validation"
)

// multipartOverhead is the allowance for form fields and boundaries on top of the file size.
const multipartOverhead = 1 << 20

// AssetHandler handles HTTP requests for asset operations.
type AssetHandler struct {
	assetUseCase   mediaUseCase.AssetUseCase
	uploadMaxBytes int64
	logger         *slog.Logger
}

// NewAssetHandler creates a new asset handler. Upload bodies larger than uploadMaxBytes
// are rejected with 413.
func NewAssetHandler(
	assetUseCase mediaUseCase.AssetUseCase,
	uploadMaxBytes int64,
	logger *slog.Logger,
) *AssetHandler {
	return &AssetHandler{
		assetUseCase:   assetUseCase,
		uploadMaxBytes: uploadMaxBytes,
		logger:         logger,
	}
}

// ListHandler lists the assets of an account.
// GET /v1/accounts/:id/assets?folder=&max_results=50&next_cursor=&resource_type=image
func (h *AssetHandler) ListHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}

	maxResults := mediaDomain.DefaultMaxResults
	if raw := c.Query("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > mediaDomain.MaxMaxResults {
			httputil.HandleBadRequestGin(c,
				fmt.Errorf("invalid max_results parameter: must be between 1 and %d", mediaDomain.MaxMaxResults),
				h.logger)
			return
		}
		maxResults = parsed
	}

	category, err := mediaDomain.ParseCategory(c.Query("resource_type"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	page, err := h.assetUseCase.List(c.Request.Context(), accountID, authHTTP.CallerID(c.Request.Context()),
		mediaDomain.ListAssetsInput{
			Category:   category,
			Prefix:     c.Query("folder"),
			MaxResults: maxResults,
			NextCursor: c.Query("next_cursor"),
		})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssetPageToResponse(page))
}

// UploadHandler uploads a file to an account.
// POST /v1/accounts/:id/assets (multipart/form-data: file, folder, public_id, tags)
// Returns 201 Created with the stored asset.
func (h *AssetHandler) UploadHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}

	if h.uploadMaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadMaxBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.handleTooLarge(c)
			return
		}
		httputil.HandleBadRequestGin(c, fmt.Errorf("file is required"), h.logger)
		return
	}
	if h.uploadMaxBytes > 0 && fileHeader.Size > h.uploadMaxBytes {
		h.handleTooLarge(c)
		return
	}

	fields := dto.UploadFields{
		Folder:   strings.Trim(c.PostForm("folder"), "/"),
		PublicID: c.PostForm("public_id"),
		Tags:     dto.SplitTags(c.PostForm("tags")),
	}
	if err := fields.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("failed to read uploaded file"), h.logger)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file", slog.Any("error", closeErr))
		}
	}()

	asset, err := h.assetUseCase.Upload(c.Request.Context(), accountID, authHTTP.CallerID(c.Request.Context()),
		mediaDomain.UploadAssetInput{
			File:     file,
			Filename: fileHeader.Filename,
			Folder:   fields.Folder,
			PublicID: fields.PublicID,
			Tags:     fields.Tags,
		})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadAssetResponse{
		Message: "File uploaded successfully",
		Asset:   dto.MapAssetToResponse(asset),
	})
}

// UpdateHandler renames an asset and adds tags and context.
// PATCH /v1/accounts/:id/assets/*public_id?strict=false
func (h *AssetHandler) UpdateHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}
	publicID, ok := h.parsePublicID(c)
	if !ok {
		return
	}
	strict, ok := h.parseStrict(c)
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	result, err := h.assetUseCase.Update(
		c.Request.Context(),
		accountID,
		authHTTP.CallerID(c.Request.Context()),
		publicID,
		req.ToInput(),
		strict,
	)
	if err != nil {
		var partial *mediaDomain.PartialUpdateError
		if errors.As(err, &partial) {
			h.handlePartialUpdate(c, partial)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUpdateResultToResponse(result))
}

// DeleteHandler destroys an asset after resolving its resource type.
// DELETE /v1/accounts/:id/assets/*public_id?strict=false
// With strict=true an unresolved resource type is 404 instead of a delete under the default type.
func (h *AssetHandler) DeleteHandler(c *gin.Context) {
	accountID, ok := h.parseAccountID(c)
	if !ok {
		return
	}
	publicID, ok := h.parsePublicID(c)
	if !ok {
		return
	}
	strict, ok := h.parseStrict(c)
	if !ok {
		return
	}

	result, err := h.assetUseCase.Delete(
		c.Request.Context(),
		accountID,
		authHTTP.CallerID(c.Request.Context()),
		publicID,
		strict,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDeleteResultToResponse(result))
}

func (h *AssetHandler) parseAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid account ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return accountID, true
}

// parsePublicID reads the catch-all public id parameter, which gin prefixes with "/".
func (h *AssetHandler) parsePublicID(c *gin.Context) (string, bool) {
	publicID := strings.TrimPrefix(c.Param("public_id"), "/")
	if publicID == "" {
		httputil.HandleBadRequestGin(c, fmt.Errorf("public id is required"), h.logger)
		return "", false
	}
	if err := customValidation.PublicID.Validate(publicID); err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid public id: %w", err), h.logger)
		return "", false
	}
	return publicID, true
}

func (h *AssetHandler) parseStrict(c *gin.Context) (bool, bool) {
	raw := c.Query("strict")
	if raw == "" {
		return false, true
	}
	strict, err := strconv.ParseBool(raw)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid strict parameter: must be a boolean"), h.logger)
		return false, false
	}
	return strict, true
}

// handlePartialUpdate reports the failure together with the asset's new public id.
func (h *AssetHandler) handlePartialUpdate(c *gin.Context, partial *mediaDomain.PartialUpdateError) {
	statusCode, errorResponse := httputil.MapError(partial)
	h.logger.Error("asset update partially applied",
		slog.Int("status_code", statusCode),
		slog.String("public_id", partial.Result.PublicID),
		slog.Any("error", partial.Err),
	)
	c.JSON(statusCode, dto.MapPartialUpdateToResponse(errorResponse, partial.Result))
}

func (h *AssetHandler) handleTooLarge(c *gin.Context) {
	h.logger.Warn("upload rejected: file too large", slog.Int64("max_bytes", h.uploadMaxBytes))
	c.JSON(http.StatusRequestEntityTooLarge, httputil.ErrorResponse{
		Error:   "payload_too_large",
		Message: fmt.Sprintf("file exceeds the maximum upload size of %d bytes", h.uploadMaxBytes),
	})
}
