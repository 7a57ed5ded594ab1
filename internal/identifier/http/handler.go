// Package http provides HTTP handlers for identifier generation and validation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/idsmith/internal/httputil"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/http/dto"
	"github.com/allisson/idsmith/internal/identifier/usecase"
	customValidation "github.com/allisson/idsmith/internal/validation"
)

// IdentifierHandler serves the registry-backed kinds under /v1/{kind}.
type IdentifierHandler struct {
	identifierUseCase usecase.IdentifierUseCase
	logger            *slog.Logger
}

// NewIdentifierHandler creates a new identifier handler with required dependencies.
func NewIdentifierHandler(identifierUseCase usecase.IdentifierUseCase, logger *slog.Logger) *IdentifierHandler {
	return &IdentifierHandler{identifierUseCase: identifierUseCase, logger: logger}
}

// RegisterRoutes mounts the handler on rg (normally /v1).
func (h *IdentifierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	kinds := rg.Group("/:kind")
	kinds.POST("/generate", h.GenerateHandler)
	kinds.POST("/validate", h.ValidateHandler)
	kinds.POST("/format", h.FormatHandler)
	kinds.POST("/parse", h.ParseHandler)
	kinds.GET("/countries", h.ListCountriesHandler)
}

// kind resolves the :kind path parameter, writing a 404 when it is unknown.
func (h *IdentifierHandler) kind(c *gin.Context) (domain.Kind, bool) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return "", false
	}
	return kind, true
}

func (h *IdentifierHandler) bindValue(c *gin.Context) (dto.ValueRequest, bool) {
	var req dto.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return req, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return req, false
	}
	return req, true
}

// GenerateHandler generates a batch of identifiers.
// POST /v1/{kind}/generate
func (h *IdentifierHandler) GenerateHandler(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	opts, batch, err := req.ToOptions()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	results, err := h.identifierUseCase.Generate(c.Request.Context(), kind, opts, batch)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResultsToResponse(results))
}

// ValidateHandler reports whether a value is valid for a country. Malformed values are
// a 200 with valid=false; only an unsupported country is an error.
// POST /v1/{kind}/validate
func (h *IdentifierHandler) ValidateHandler(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	req, ok := h.bindValue(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	valid, err := h.identifierUseCase.Validate(ctx, kind, req.Country, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.ValidateResponse{Valid: valid}
	if valid {
		if response.Formatted, err = h.identifierUseCase.Format(ctx, kind, req.Country, req.Value); err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
	}
	c.JSON(http.StatusOK, response)
}

// FormatHandler renders a value in its display form.
// POST /v1/{kind}/format
func (h *IdentifierHandler) FormatHandler(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	req, ok := h.bindValue(c)
	if !ok {
		return
	}

	formatted, err := h.identifierUseCase.Format(c.Request.Context(), kind, req.Country, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"formatted": formatted})
}

// ParseHandler decomposes a value into its fields.
// POST /v1/{kind}/parse
func (h *IdentifierHandler) ParseHandler(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	req, ok := h.bindValue(c)
	if !ok {
		return
	}

	result, err := h.identifierUseCase.Parse(c.Request.Context(), kind, req.Country, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResultToResponse(result))
}

// ListCountriesHandler lists the supported countries of a kind.
// GET /v1/{kind}/countries?offset=0&limit=50
func (h *IdentifierHandler) ListCountriesHandler(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	infos, err := h.identifierUseCase.ListCountries(c.Request.Context(), kind)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCountriesToResponse(httputil.Page(infos, offset, limit), len(infos)))
}
