package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"receipt-tracker/internal/errors"
	"receipt-tracker/internal/services"
	"receipt-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError for client and business errors
// and SendSystemError for anything internal; neither exposes error text.

const (
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the envelope for successful responses that carry a message
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic SYSTEM_001 body
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError answers with one detail per failed field, or the raw
// message when err did not come from the validator.
func SendValidationError(c echo.Context, err error) error {
	if fields := validation.FieldErrors(err); fields != nil {
		errorResponse := errors.NewValidationError(fields, getTraceID(c))
		return c.JSON(http.StatusBadRequest, errorResponse)
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

// SendServiceError maps merchant mapping service errors onto API codes
func SendServiceError(c echo.Context, err error, normalized string) error {
	switch {
	case stderrors.Is(err, services.ErrMappingNotFound):
		return SendError(c, errors.MappingNotFound, errors.WithMerchant(normalized))
	case stderrors.Is(err, services.ErrInvalidMerchant):
		return SendError(c, errors.ValidationInvalidMerchant)
	case stderrors.Is(err, services.ErrInvalidCategory):
		return SendError(c, errors.ValidationInvalidCategory)
	case stderrors.Is(err, services.ErrMappingSaveFailed):
		slog.ErrorContext(c.Request().Context(), "mapping save failed", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.MappingSaveFailed)
	case stderrors.Is(err, services.ErrMappingDeleteFailed):
		slog.ErrorContext(c.Request().Context(), "mapping delete failed", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.MappingDeleteFailed)
	default:
		return SendSystemError(c, err)
	}
}
