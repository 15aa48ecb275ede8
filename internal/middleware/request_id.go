package middleware

import (
	"net/http"
	"strings"

	"clevercash/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the request's correlation id in both directions.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key handlers read the id from.
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// inboundHeaders are checked in order for an id assigned upstream.
var inboundHeaders = []string{TraceIDHeader, echo.HeaderXRequestID}

// RequestID tags every request with a correlation id, reusing one sent by the
// caller when it is usable and generating a UUID otherwise.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := inboundTraceID(c.Request())
			if traceID == "" {
				traceID = uuid.NewString()
			}

			bindTraceID(c, traceID)
			return next(c)
		}
	}
}

func inboundTraceID(req *http.Request) string {
	for _, header := range inboundHeaders {
		id := strings.TrimSpace(req.Header.Get(header))
		if id != "" && len(id) <= maxTraceIDLength {
			return id
		}
	}
	return ""
}

// bindTraceID exposes the id to handlers, to the audit events services write
// for this request and to the caller.
func bindTraceID(c echo.Context, traceID string) {
	c.Set(TraceIDContextKey, traceID)

	req := c.Request()
	c.SetRequest(req.WithContext(services.WithRequestID(req.Context(), traceID)))

	c.Response().Header().Set(TraceIDHeader, traceID)
}

// GetTraceID returns the id bound by RequestID, or "" outside of it.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
