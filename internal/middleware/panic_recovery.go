package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"receipt-tracker/internal/errors"
	"receipt-tracker/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}
				if sendErr := handlers.SendError(c, errors.SystemInternalError); sendErr != nil {
					err = sendErr
				}
			}()

			return next(c)
		}
	}
}
