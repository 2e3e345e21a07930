// Package auth authenticates HTTP callers with signed bearer tokens and exposes the
// resolved principal to handlers.
package auth

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretIsRequired = errors.New("token secret is required")
	ErrTTLIsInvalid     = errors.New("token ttl must be positive")
)

// Claims carries the user id in the subject. Roles are not embedded; they are loaded
// on every request so that group changes apply immediately.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		return nil, ErrTTLIsInvalid
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for an authenticated principal.
func (t *Tokens) Issue(principal *identity.Principal) (string, time.Time, error) {
	if !principal.IsAuthenticated() {
		return "", time.Time{}, errs.NewValueIsRequiredError("principal")
	}

	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := Claims{
		Username: principal.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt.Truncate(time.Second), nil
}

// Verify returns the user id of a valid token. Any failure is an
// AuthenticationRequired access error.
func (t *Tokens) Verify(raw string) (kernel.ID, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return 0, errs.NewAuthenticationRequiredError("invalid token")
	}

	id, err := kernel.ParseID(claims.Subject)
	if err != nil {
		return 0, errs.NewAuthenticationRequiredError("invalid token subject")
	}
	return id, nil
}
