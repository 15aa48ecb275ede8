package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"clevercash/internal/errors"
	"clevercash/internal/validation"

	"github.com/labstack/echo/v4"
)

var handlerNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator(validation.NewValidatorWithClock(func() time.Time { return handlerNow }))
	return e
}

// newTestContext builds a context with the route params already bound,
// names and values given as alternating pairs.
func newTestContext(e *echo.Echo, method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")

	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func decodeError(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var body errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

// decodeData unmarshals the data field of a SuccessResponse into out.
func decodeData(rec *httptest.ResponseRecorder, out interface{}) error {
	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}
