package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery_ReturnsSystemError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/categorizations", nil), rec)
	c.Set(TraceIDContextKey, "panic-trace")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("nil map write")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_001")
	assert.Contains(t, rec.Body.String(), "panic-trace")
	assert.NotContains(t, rec.Body.String(), "nil map write")
}

func TestPanicRecovery_PassesThrough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}

func TestPanicRecovery_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("after write")
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
