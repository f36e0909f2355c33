package middleware

import (
	"context"

	"receipt-tracker/internal/handlers"
	"receipt-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = handlers.TraceIDContextKey
)

// RequestID assigns each request a trace ID, reusing the caller's X-Trace-ID
// when present. The ID is echoed in the response header and attached to the
// request context so service logs carry it as correlation_id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), services.RequestIDKey, traceID)))

			return next(c)
		}
	}
}

func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
