package http

import (
	"fmt"
	"net/http"

	"littlelemon/internal/adapters/in/http/auth"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListGroupMembers handles GET /groups/{group}/users.
func (s *Server) ListGroupMembers(ctx echo.Context, group servers.Group) error {
	query, err := queries.NewListGroupMembersQuery(auth.PrincipalFrom(ctx), group)
	if err != nil {
		return err
	}

	members, err := s.listGroupMembersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.User, len(members))
	for i, m := range members {
		response[i] = servers.User{Id: m.ID.Int64(), Username: m.Username, Email: m.Email}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddGroupMember handles POST /groups/{group}/users. The body carries the credentials
// of the user to enrol.
func (s *Server) AddGroupMember(ctx echo.Context, group servers.Group) error {
	var body servers.AddGroupMemberJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddGroupMemberCommand(auth.PrincipalFrom(ctx), group, body.Username, body.Password)
	if err != nil {
		return err
	}

	if _, err = s.addGroupMemberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Message{
		Message: fmt.Sprintf("user added to the %s group", cmd.Role()),
	})
}

// RemoveGroupMember handles DELETE /groups/{group}/users/{userId}.
func (s *Server) RemoveGroupMember(ctx echo.Context, group servers.Group, userId int64) error {
	cmd, err := commands.NewRemoveGroupMemberCommand(auth.PrincipalFrom(ctx), group, kernel.ID(userId))
	if err != nil {
		return err
	}

	member, err := s.removeGroupMemberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{
		Message: fmt.Sprintf("%s deleted from the %s group", member.Username, cmd.Role()),
	})
}
