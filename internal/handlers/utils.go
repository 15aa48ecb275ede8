package handlers

import (
	"fmt"

	"clevercash/internal/errors"
	"clevercash/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

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

func getAccountID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("accountId"))
}

// sendValidationError answers a failed c.Validate with per-field details.
func sendValidationError(c echo.Context, err error) error {
	fields := validation.FieldErrors(err)
	if fields == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	errorResponse := errors.NewValidationError(fields, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
