package auth

import (
	"context"
	"errors"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// PrincipalResolver loads the current roles and permissions of a user.
type PrincipalResolver interface {
	Principal(ctx context.Context, id kernel.ID) (*identity.Principal, error)
}

// Middleware resolves the bearer token of a request into a principal. Requests without
// an Authorization header continue anonymously; a bad token is rejected.
func Middleware(tokens *Tokens, users PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			raw, err := bearer(header)
			if err != nil {
				return err
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				return err
			}

			principal, err := users.Principal(c.Request().Context(), userID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewAuthenticationRequiredError("user no longer exists")
			}
			if err != nil {
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller of the request, nil for anonymous callers.
func PrincipalFrom(c echo.Context) *identity.Principal {
	p, _ := c.Get(principalKey).(*identity.Principal)
	return p
}

// bearer accepts both "Bearer <token>" and the "Token <token>" scheme.
func bearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", errs.NewAuthenticationRequiredError("malformed authorization header")
	}
	switch strings.ToLower(scheme) {
	case "bearer", "token":
		return strings.TrimSpace(token), nil
	default:
		return "", errs.NewAuthenticationRequiredError("unsupported authorization scheme " + scheme)
	}
}
