package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/idsmith/internal/httputil"
	"github.com/allisson/idsmith/internal/identifier/http/dto"
	"github.com/allisson/idsmith/internal/identifier/usecase"
	customValidation "github.com/allisson/idsmith/internal/validation"
)

// InstitutionHandler serves the identifiers that are not country registries: IBANs,
// payment cards and LEIs.
type InstitutionHandler struct {
	ibanUseCase usecase.IBANUseCase
	cardUseCase usecase.CardUseCase
	leiUseCase  usecase.LEIUseCase
	logger      *slog.Logger
}

// NewInstitutionHandler creates a new handler for IBANs, cards and LEIs.
func NewInstitutionHandler(
	ibanUseCase usecase.IBANUseCase,
	cardUseCase usecase.CardUseCase,
	leiUseCase usecase.LEIUseCase,
	logger *slog.Logger,
) *InstitutionHandler {
	return &InstitutionHandler{
		ibanUseCase: ibanUseCase,
		cardUseCase: cardUseCase,
		leiUseCase:  leiUseCase,
		logger:      logger,
	}
}

// RegisterRoutes mounts the handler on rg (normally /v1). The static prefixes take
// precedence over the /:kind routes of IdentifierHandler.
func (h *InstitutionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ibans := rg.Group("/iban")
	ibans.POST("/generate", h.GenerateIBANHandler)
	ibans.POST("/validate", h.ValidateIBANHandler)
	ibans.GET("/countries", h.ListIBANCountriesHandler)

	cards := rg.Group("/cards")
	cards.POST("/generate", h.GenerateCardHandler)
	cards.POST("/validate", h.ValidateCardHandler)

	leis := rg.Group("/lei")
	leis.POST("/generate", h.GenerateLEIHandler)
	leis.POST("/validate", h.ValidateLEIHandler)
}

// bind decodes and validates a request body, writing the error response on failure.
func (h *InstitutionHandler) bind(c *gin.Context, req any, validate func() error) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}
	if err := validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}
	return true
}

// GenerateIBANHandler generates IBANs.
// POST /v1/iban/generate
func (h *InstitutionHandler) GenerateIBANHandler(c *gin.Context) {
	var req dto.IBANGenerateRequest
	if !h.bind(c, &req, req.Validate) {
		return
	}

	ibans, err := h.ibanUseCase.Generate(c.Request.Context(), req.Country, req.Batch())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIBANsToResponse(ibans))
}

// ValidateIBANHandler checks an IBAN and returns its decomposition.
// POST /v1/iban/validate
func (h *InstitutionHandler) ValidateIBANHandler(c *gin.Context) {
	var req dto.ValueRequest
	if !h.bind(c, &req, req.ValidateValueOnly) {
		return
	}

	out, err := h.ibanUseCase.Validate(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIBANToResponse(out))
}

// ListIBANCountriesHandler lists the countries with an IBAN layout.
// GET /v1/iban/countries
func (h *InstitutionHandler) ListIBANCountriesHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	countries, err := h.ibanUseCase.ListCountries(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIBANCountriesToResponse(httputil.Page(countries, offset, limit), len(countries)))
}

// GenerateCardHandler generates payment card numbers.
// POST /v1/cards/generate
func (h *InstitutionHandler) GenerateCardHandler(c *gin.Context) {
	var req dto.CardGenerateRequest
	if !h.bind(c, &req, req.Validate) {
		return
	}

	cards, err := h.cardUseCase.Generate(c.Request.Context(), req.Brand, req.Batch())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardsToResponse(cards))
}

// ValidateCardHandler checks a card number.
// POST /v1/cards/validate
func (h *InstitutionHandler) ValidateCardHandler(c *gin.Context) {
	var req dto.ValueRequest
	if !h.bind(c, &req, req.ValidateValueOnly) {
		return
	}

	card, err := h.cardUseCase.Validate(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardToResponse(card))
}

// GenerateLEIHandler generates LEIs.
// POST /v1/lei/generate
func (h *InstitutionHandler) GenerateLEIHandler(c *gin.Context) {
	var req dto.LEIGenerateRequest
	if !h.bind(c, &req, req.Validate) {
		return
	}

	leis, err := h.leiUseCase.Generate(c.Request.Context(), req.Country, req.Batch())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLEIsToResponse(leis))
}

// ValidateLEIHandler checks an LEI.
// POST /v1/lei/validate
func (h *InstitutionHandler) ValidateLEIHandler(c *gin.Context) {
	var req dto.ValueRequest
	if !h.bind(c, &req, req.ValidateValueOnly) {
		return
	}

	out, err := h.leiUseCase.Validate(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLEIToResponse(out))
}
