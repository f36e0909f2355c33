package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"receipt-tracker/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doLimitedRequest(t *testing.T, e *echo.Echo, mw echo.MiddlewareFunc, setup func(echo.Context, *http.Request)) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mappings", nil)
	req.RemoteAddr = "192.168.1.100:12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c, req)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	defer rl.Stop()
	e := echo.New()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doLimitedRequest(t, e, rl.Middleware(), nil))
	}
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, e, rl.Middleware(), nil))
}

func TestRateLimiter_SeparateBucketsPerTenant(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()
	e := echo.New()

	tenantA := func(c echo.Context, _ *http.Request) { c.Set(handlers.TenantIDContextKey, uuid.New()) }
	tenantB := func(c echo.Context, _ *http.Request) { c.Set(handlers.TenantIDContextKey, uuid.New()) }

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, e, rl.Middleware(), tenantA))
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, e, rl.Middleware(), tenantB))
}

func TestRateLimiter_UsesForwardedFor(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()
	e := echo.New()

	fromClient := func(ip string) func(echo.Context, *http.Request) {
		return func(_ echo.Context, req *http.Request) {
			req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		}
	}

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, e, rl.Middleware(), fromClient("203.0.113.5")))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, e, rl.Middleware(), fromClient("203.0.113.5")))
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, e, rl.Middleware(), fromClient("203.0.113.6")))
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	rl.allow("ip:1.1.1.1")
	rl.allow("ip:2.2.2.2")
	rl.visitors["ip:1.1.1.1"].lastSeen = time.Now().Add(-10 * time.Minute)

	rl.evictIdle(time.Now())

	assert.NotContains(t, rl.visitors, "ip:1.1.1.1")
	assert.Contains(t, rl.visitors, "ip:2.2.2.2")
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
