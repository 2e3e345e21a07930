package http

import (
	"errors"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/generated/servers"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /auth/users. New accounts join the Customer group.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body servers.RegisterUserJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	email := ""
	if body.Email != nil {
		email = *body.Email
	}

	cmd, err := commands.NewRegisterUserCommand(body.Username, body.Password, email)
	if err != nil {
		return err
	}

	userID, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	reg := cmd.Registration()
	return ctx.JSON(http.StatusCreated, servers.User{
		Id:       userID.Int64(),
		Username: reg.Username,
		Email:    reg.Email,
	})
}

// Login handles POST /auth/token/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	creds, err := identity.NewCredentials(body.Username, body.Password)
	if err != nil {
		return err
	}

	principal, err := s.authenticator.Authenticate(ctx.Request().Context(), creds)
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsInvalid) {
		return errs.NewFieldsError().Add(nonFieldErrors, "Unable to log in with provided credentials.")
	}
	if err != nil {
		return err
	}

	token, expiresAt, err := s.tokens.Issue(principal)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Token{AuthToken: token, ExpiresAt: expiresAt})
}
