package handlers

import (
	"net/http"

	"receipt-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

type CacheHandler struct {
	mappingService services.MerchantMappingServiceInterface
}

func NewCacheHandler(mappingService services.MerchantMappingServiceInterface) *CacheHandler {
	return &CacheHandler{mappingService: mappingService}
}

// GetStats reports the merchant map cache counters
// @Summary Merchant map cache statistics
// @Tags Cache
// @Security BearerAuth
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.mappingService.CacheStats())
}

// ClearCache drops every cached entry on this and peer instances
// @Summary Clear the merchant map cache
// @Tags Cache
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Admin role required"
// @Router /cache [delete]
func (h *CacheHandler) ClearCache(c echo.Context) error {
	h.mappingService.ClearCache(c.Request().Context())

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Merchant map cache cleared"})
}
