package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the tenant auth middleware
const (
	TenantIDContextKey = "tenant_id"
	UserIDContextKey   = "user_id"
	UserRoleContextKey = "user_role"
)

var ErrUnauthorized = fmt.Errorf("unauthorized")

func getTenantIDFromContext(c echo.Context) (uuid.UUID, error) {
	return getUUIDFromContext(c, TenantIDContextKey)
}

func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	return getUUIDFromContext(c, UserIDContextKey)
}

func getUUIDFromContext(c echo.Context, key string) (uuid.UUID, error) {
	id, ok := c.Get(key).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}
	return id, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
