package handlers

import (
	"net/http"

	"receipt-tracker/internal/dto"
	"receipt-tracker/internal/errors"
	"receipt-tracker/internal/models"
	"receipt-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// MappingHandler exposes a tenant's learned merchant mappings and the
// correction endpoint that teaches new ones.
type MappingHandler struct {
	mappingService  services.MerchantMappingServiceInterface
	suggestionLimit int
}

func NewMappingHandler(mappingService services.MerchantMappingServiceInterface, suggestionLimit int) *MappingHandler {
	if suggestionLimit <= 0 {
		suggestionLimit = services.DefaultSuggestionLimit
	}
	return &MappingHandler{
		mappingService:  mappingService,
		suggestionLimit: suggestionLimit,
	}
}

// ListMappings returns every mapping the tenant has taught
// @Summary List learned merchant mappings
// @Tags Mappings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MappingListResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing tenant"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /mappings [get]
func (h *MappingHandler) ListMappings(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingTenant)
	}

	mappings, err := h.mappingService.ListMappings(c.Request().Context(), tenantID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMappingListResponse(mappings))
}

// LookupMapping returns the tenant's mapping for one merchant
// @Summary Look up a learned merchant mapping
// @Tags Mappings
// @Security BearerAuth
// @Produce json
// @Param merchant query string true "Merchant name as printed on the receipt"
// @Success 200 {object} dto.MappingResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing merchant"
// @Failure 404 {object} errors.ErrorResponse "MAPPING_001 - No learned mapping"
// @Router /mappings/lookup [get]
func (h *MappingHandler) LookupMapping(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingTenant)
	}

	var query dto.MerchantQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	mapping := h.mappingService.Lookup(c.Request().Context(), tenantID, query.Merchant)
	if mapping == nil {
		return SendError(c, errors.MappingNotFound, errors.WithMerchant(models.NormalizeMerchantName(query.Merchant)))
	}

	return c.JSON(http.StatusOK, dto.NewMappingResponse(mapping))
}

// SuggestMappings returns learned merchants with names close to the query
// @Summary Suggest similar learned merchants
// @Tags Mappings
// @Security BearerAuth
// @Produce json
// @Param merchant query string true "Merchant name"
// @Param limit query int false "Maximum suggestions (default 5, max 20)"
// @Success 200 {object} dto.SuggestionListResponse
// @Router /mappings/suggestions [get]
func (h *MappingHandler) SuggestMappings(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingTenant)
	}

	query := dto.SuggestionQuery{
		Merchant: c.QueryParam("merchant"),
		Limit:    getIntParam(c, "limit", h.suggestionLimit),
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	suggestions, err := h.mappingService.SuggestMappings(c.Request().Context(), tenantID, query.Merchant, query.Limit)
	if err != nil {
		return SendServiceError(c, err, "")
	}

	return c.JSON(http.StatusOK, dto.NewSuggestionListResponse(models.NormalizeMerchantName(query.Merchant), suggestions))
}

// UpdateMapping records a user's category correction for a merchant
// @Summary Correct a merchant's category
// @Description Saves the correction and makes it effective immediately for the whole tenant
// @Tags Mappings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateMappingRequest true "Correction"
// @Success 200 {object} dto.MappingResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "MAPPING_002 - Failed to save"
// @Router /mappings [put]
func (h *MappingHandler) UpdateMapping(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingTenant)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateMappingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	mapping, err := h.mappingService.UpdateMapping(c.Request().Context(), tenantID, req.Merchant, req.Category, req.Subcategory, userID)
	if err != nil {
		return SendServiceError(c, err, models.NormalizeMerchantName(req.Merchant))
	}

	return c.JSON(http.StatusOK, dto.NewMappingResponse(mapping))
}

// DeleteMapping forgets the tenant's mapping for one merchant
// @Summary Forget a learned merchant mapping
// @Tags Mappings
// @Security BearerAuth
// @Param merchant query string true "Merchant name"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "MAPPING_001 - No learned mapping"
// @Router /mappings [delete]
func (h *MappingHandler) DeleteMapping(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingTenant)
	}

	query := dto.MerchantQuery{Merchant: c.QueryParam("merchant")}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	if err := h.mappingService.DeleteMapping(c.Request().Context(), tenantID, query.Merchant); err != nil {
		return SendServiceError(c, err, models.NormalizeMerchantName(query.Merchant))
	}

	return c.NoContent(http.StatusNoContent)
}

// ResetMappings deletes everything the tenant has taught
// @Summary Reset a tenant's learned mappings
// @Tags Mappings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ResetTenantResponse
// @Router /mappings/all [delete]
func (h *MappingHandler) ResetMappings(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingTenant)
	}

	removed, err := h.mappingService.ResetTenant(c.Request().Context(), tenantID)
	if err != nil {
		return SendServiceError(c, err, "")
	}

	return c.JSON(http.StatusOK, dto.ResetTenantResponse{
		Removed: removed,
		Message: "Learned merchant mappings reset",
	})
}
