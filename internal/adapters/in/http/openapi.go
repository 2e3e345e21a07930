package http

import (
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const nonFieldErrors = "non_field_errors"

// ValidateRequests checks parameters and bodies against doc before a handler runs.
// Routes unknown to doc are left for echo to resolve. Authentication is not checked
// here; handlers authorize through the domain policy.
func ValidateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return requestFieldsError(err)
			}
			return next(c)
		}
	}, nil
}

func requestFieldsError(err error) error {
	fields := errs.NewFieldsError()
	collectRequestErrors(fields, "", err)
	return fields.OrNil()
}

func collectRequestErrors(fields *errs.FieldsError, field string, err error) {
	var (
		multi     openapi3.MultiError
		reqErr    *openapi3filter.RequestError
		schemaErr *openapi3.SchemaError
	)
	switch {
	case errors.As(err, &multi):
		for _, inner := range multi {
			collectRequestErrors(fields, field, inner)
		}
	case errors.As(err, &reqErr):
		if reqErr.Parameter != nil {
			field = reqErr.Parameter.Name
		}
		if reqErr.Err == nil {
			fields.Add(orNonField(field), reqErr.Reason)
			return
		}
		collectRequestErrors(fields, field, reqErr.Err)
	case errors.As(err, &schemaErr):
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			field = strings.Join(pointer, ".")
		}
		fields.Add(orNonField(field), schemaErr.Reason)
	default:
		fields.Add(orNonField(field), err.Error())
	}
}

func orNonField(field string) string {
	if field == "" {
		return nonFieldErrors
	}
	return field
}
