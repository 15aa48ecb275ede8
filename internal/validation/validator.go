package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"clevercash/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a validator whose notion of today is the wall clock.
func NewValidator() *Validator {
	return NewValidatorWithClock(time.Now)
}

// NewValidatorWithClock creates a validator that resolves not_past_date
// against now.
func NewValidatorWithClock(now func() time.Time) *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      now,
	}

	// decimal.Decimal is a struct; validate it through its string form.
	v.validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.validate.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.validate.RegisterValidation("not_blank", validateNotBlank)
	_ = v.validate.RegisterValidation("not_past_date", v.validateNotPastDate)

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates a request DTO.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validation errors into field -> message pairs keyed by
// the JSON field name. Errors that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "positive_decimal":
		return "must be a positive amount"
	case "not_blank":
		return "must not be blank"
	case "not_past_date":
		return "must not be in the past"
	case "gt", "min":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validatePositiveDecimal validates that a decimal amount is greater than 0
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateNotPastDate accepts today and any later calendar date.
func (v *Validator) validateNotPastDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok || t.IsZero() {
		return false
	}
	return !models.DateOf(t).Before(models.DateOf(v.now()))
}
