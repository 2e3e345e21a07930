package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"littlelemon/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator is the echo.Validator for request bodies. Field errors are keyed by
// their JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}

	fields := errs.NewFieldsError()
	for _, fe := range invalid {
		fields.Add(fe.Field(), ruleMessage(fe))
	}
	return fields
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
