package handlers

import (
	"log/slog"
	"net/http"

	"clevercash/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers answer errors through one of three helpers:
//
// 1. SendError - a known error code (4xx), e.g. malformed path parameters:
//    SendError(c, errors.AccountInvalidID)
//
// 2. SendServiceError - any error returned by a service. Domain errors keep
//    their code and status; everything else becomes SYSTEM_001.
//
// 3. SendSystemError - internal failures that must not leak details.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendServiceError maps a service error onto its error code and status.
func SendServiceError(c echo.Context, err error) error {
	if _, ok := errors.AsDomainError(err); !ok {
		return SendSystemError(c, err)
	}

	errorResponse := errors.FromError(err, getTraceID(c))
	if detail := err.Error(); detail != errorResponse.Error.Message {
		errorResponse.Error.Details = []string{detail}
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs the internal error and answers with a generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
}

func sendData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Data: data})
}
