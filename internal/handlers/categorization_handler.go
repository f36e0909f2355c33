package handlers

import (
	"net/http"

	"receipt-tracker/internal/dto"
	"receipt-tracker/internal/errors"
	"receipt-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategorizationHandler is the entry point for the AI receipt pipeline
type CategorizationHandler struct {
	mappingService services.MerchantMappingServiceInterface
}

func NewCategorizationHandler(mappingService services.MerchantMappingServiceInterface) *CategorizationHandler {
	return &CategorizationHandler{mappingService: mappingService}
}

// CategorizeReceipt applies the tenant's learned merchant mapping to an AI categorization
// @Summary Apply learned merchant mapping
// @Description Overrides the AI category with the tenant's learned mapping for the merchant, if one exists
// @Tags Categorization
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CategorizeReceiptRequest true "AI categorization"
// @Success 200 {object} dto.CategorizeReceiptResponse "Final categorization"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing tenant"
// @Router /categorizations [post]
func (h *CategorizationHandler) CategorizeReceipt(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingTenant)
	}

	var req dto.CategorizeReceiptRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CategorizationInvalidReceipt, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	result := h.mappingService.CategorizeReceipt(c.Request().Context(), tenantID, req.ToModel())

	return c.JSON(http.StatusOK, dto.NewCategorizeReceiptResponse(result, req.Total))
}
