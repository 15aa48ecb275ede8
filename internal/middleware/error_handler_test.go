package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clevercash/internal/errors"
	"clevercash/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(s.registry)
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) serve(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(err, c)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, body := s.serve(echo.NewHTTPError(http.StatusNotFound, "Resource not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.SystemRouteNotFound), body.Error.Code)
	s.Equal("Resource not found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestDomainError() {
	rec, body := s.serve(fmt.Errorf("loading: %w",
		errors.NewDomainError(errors.KindNotFound, errors.InstallmentNotFound, "installment not found")))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.InstallmentNotFound), body.Error.Code)
	s.Equal("installment not found", body.Error.Message)
}

func (s *ErrorHandlerTestSuite) TestValidationError() {
	type payload struct {
		Amount string `json:"amount" validate:"required"`
	}
	err := validation.NewValidator().Struct(&payload{})
	s.Require().Error(err)

	rec, body := s.serve(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), body.Error.Code)
	s.Equal([]string{"amount: is required"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorIsNotLeaked() {
	rec, body := s.serve(fmt.Errorf("pq: connection refused"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.handler(fmt.Errorf("boom"), c)

	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(c.NoContent(http.StatusNoContent))

	s.handler(fmt.Errorf("boom"), c)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.serve(echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))
	s.serve(echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))

	expected := `
# HELP api_errors_total Total number of API errors by code, endpoint, and status
# TYPE api_errors_total counter
api_errors_total{code="SYSTEM_006",endpoint="",status="429"} 2
`
	s.NoError(testutil.GatherAndCompare(s.registry, strings.NewReader(expected), "api_errors_total"))
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	cases := map[int]errors.ErrorCode{
		http.StatusBadRequest:          errors.ValidationGeneral,
		http.StatusMethodNotAllowed:    errors.ValidationGeneral,
		http.StatusNotFound:            errors.SystemRouteNotFound,
		http.StatusTooManyRequests:     errors.SystemRateLimitExceeded,
		http.StatusInternalServerError: errors.SystemInternalError,
		http.StatusServiceUnavailable:  errors.SystemServiceUnavailable,
		http.StatusTeapot:              errors.SystemUnexpectedError,
	}
	for status, code := range cases {
		s.Equal(code, mapHTTPStatusToErrorCode(status), "status %d", status)
	}
}
