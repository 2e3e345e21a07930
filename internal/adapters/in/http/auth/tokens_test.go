package auth

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens(t *testing.T, now time.Time) *Tokens {
	t.Helper()
	tokens, err := NewTokens("test-secret", time.Hour)
	require.NoError(t, err)
	tokens.now = func() time.Time { return now }
	return tokens
}

func TestNewTokens(t *testing.T) {
	_, err := NewTokens("", time.Hour)
	assert.ErrorIs(t, err, ErrSecretIsRequired)

	_, err = NewTokens("secret", 0)
	assert.ErrorIs(t, err, ErrTTLIsInvalid)
}

func TestTokens_IssueAndVerify(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens := newTokens(t, now)

	raw, expiresAt, err := tokens.Issue(&identity.Principal{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	id, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(7), id)
}

func TestTokens_IssueAnonymous(t *testing.T) {
	tokens := newTokens(t, time.Now())

	_, _, err := tokens.Issue(nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTokens_VerifyRejects(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens := newTokens(t, now)
	valid, _, err := tokens.Issue(&identity.Principal{UserID: 7, Username: "alice"})
	require.NoError(t, err)

	other, err := NewTokens("other-secret", time.Hour)
	require.NoError(t, err)
	other.now = tokens.now
	foreign, _, err := other.Issue(&identity.Principal{UserID: 7, Username: "alice"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		at   time.Time
	}{
		{name: "garbage", raw: "not-a-token", at: now},
		{name: "expired", raw: valid, at: now.Add(2 * time.Hour)},
		{name: "wrong secret", raw: foreign, at: now},
		{name: "unsigned", raw: unsigned, at: now},
		{name: "missing subject", raw: noSubject, at: now},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := tt.at
			tokens.now = func() time.Time { return at }

			_, err := tokens.Verify(tt.raw)
			assert.ErrorIs(t, err, errs.ErrAuthenticationRequired)
		})
	}
}
