package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListGroupMembersQueryHandler struct {
	db *gorm.DB
}

func NewListGroupMembersQueryHandler(db *gorm.DB) ListGroupMembersQueryHandler {
	return ListGroupMembersQueryHandler{db: db}
}

func (h ListGroupMembersQueryHandler) Handle(ctx context.Context, query ListGroupMembersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(query.principal, services.ManageGroups, services.Resource{}); err != nil {
		return nil, err
	}

	var rows []struct {
		ID       int64
		Username string
		Email    string
	}
	if err := h.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username, u.email
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE r.role = ?
		ORDER BY u.id
	`, int(query.role)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]UserView, 0, len(rows))
	for _, r := range rows {
		members = append(members, UserView{ID: kernel.ID(r.ID), Username: r.Username, Email: r.Email})
	}
	return members, nil
}
