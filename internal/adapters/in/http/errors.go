package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"littlelemon/internal/generated/servers"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var accessStatus = []struct {
	kind   error
	status int
	name   string
}{
	{kind: errs.ErrAuthenticationRequired, status: http.StatusUnauthorized, name: "authentication_required"},
	{kind: errs.ErrUnauthorized, status: http.StatusUnauthorized, name: "unauthorized"},
	{kind: errs.ErrForbidden, status: http.StatusForbidden, name: "forbidden"},
	{kind: errs.ErrOwnershipMismatch, status: http.StatusForbidden, name: "ownership_mismatch"},
}

// NewErrorHandler renders every error returned by a handler or middleware as a
// servers.Error body. Unexpected errors are logged and hidden behind a 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := errorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"error", err,
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func errorBody(err error) servers.Error {
	var (
		access  *errs.AccessError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &access):
		for _, s := range accessStatus {
			if errors.Is(access, s.kind) {
				return servers.Error{Code: s.status, Kind: s.name, Message: message(err)}
			}
		}
		return servers.Error{Code: http.StatusForbidden, Kind: "forbidden", Message: message(err)}
	case errors.Is(err, errs.ErrObjectNotFound):
		return servers.Error{Code: http.StatusNotFound, Kind: "not_found", Message: message(err)}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		body := servers.Error{Code: http.StatusBadRequest, Kind: "invalid_input", Message: message(err)}
		if fields := fieldErrors(err); len(fields) > 0 {
			body.Errors = &fields
		}
		return body
	case errors.As(err, &httpErr):
		return servers.Error{Code: httpErr.Code, Kind: statusKind(httpErr.Code), Message: fmt.Sprint(httpErr.Message)}
	default:
		return servers.Error{
			Code:    http.StatusInternalServerError,
			Kind:    "internal_error",
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
}

func message(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

func statusKind(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return "http_error"
	}
	return strings.ToLower(strings.ReplaceAll(text, " ", "_"))
}

// fieldErrors flattens joined validation errors into per-field messages.
func fieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)

	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *errs.FieldsError:
			for name, messages := range e.Fields {
				fields[name] = append(fields[name], messages...)
			}
		case *errs.ValueIsRequiredError:
			fields[e.ParamName] = append(fields[e.ParamName], "This field is required.")
		case *errs.ValueIsInvalidError:
			msg := "This value is invalid."
			if e.Cause != nil {
				msg = e.Cause.Error()
			}
			fields[e.ParamName] = append(fields[e.ParamName], msg)
		case *errs.ValueIsOutOfRangeError:
			fields[e.ParamName] = append(fields[e.ParamName],
				fmt.Sprintf("Ensure this value is between %v and %v.", e.Min, e.Max))
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		default:
			walk(errors.Unwrap(err))
		}
	}
	walk(err)

	return fields
}
