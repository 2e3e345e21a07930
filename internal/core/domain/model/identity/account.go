package identity

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/pkg/errs"
)

const maxUsernameLength = 150

// Credentials is a username and a plain password as presented by a caller.
type Credentials struct {
	Username string
	Password string
}

func NewCredentials(username, password string) (Credentials, error) {
	c := Credentials{Username: strings.TrimSpace(username), Password: password}
	return c, c.Validate()
}

func (c Credentials) Validate() error {
	var usernameErr, passwordErr error
	switch {
	case c.Username == "":
		usernameErr = errs.NewValueIsRequiredError("username")
	case utf8.RuneCountInString(c.Username) > maxUsernameLength:
		usernameErr = errs.NewValueIsOutOfRangeError("username", len(c.Username), 1, maxUsernameLength)
	}
	if c.Password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	return errors.Join(usernameErr, passwordErr)
}

// Registration describes a new account. Email is optional.
type Registration struct {
	Credentials
	Email string
}

func NewRegistration(username, password, email string) (Registration, error) {
	creds, err := NewCredentials(username, password)
	r := Registration{Credentials: creds, Email: strings.TrimSpace(email)}
	if err != nil {
		return r, err
	}
	return r, r.Validate()
}

func (r Registration) Validate() error {
	if err := r.Credentials.Validate(); err != nil {
		return err
	}
	if r.Email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return nil
}
