// Package userrepo persists accounts, their role memberships and model permissions.
// It is the identity provider of the service.
package userrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

type UserDTO struct {
	ID           int64               `gorm:"primaryKey"`
	Username     string              `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        string              `gorm:"type:varchar(254);not null;default:''"`
	PasswordHash string              `gorm:"type:varchar(128);not null"`
	IsStaff      bool                `gorm:"not null;default:false"`
	DateJoined   time.Time           `gorm:"not null"`
	Roles        []UserRoleDTO       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Permissions  []UserPermissionDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserDTO) TableName() string {
	return "users"
}

// UserRoleDTO is one group membership.
type UserRoleDTO struct {
	UserID int64 `gorm:"primaryKey"`
	Role   int16 `gorm:"primaryKey"`
}

func (UserRoleDTO) TableName() string {
	return "user_roles"
}

type UserPermissionDTO struct {
	UserID     int64  `gorm:"primaryKey"`
	Permission string `gorm:"type:varchar(100);primaryKey"`
}

func (UserPermissionDTO) TableName() string {
	return "user_permissions"
}

func toPrincipal(dto UserDTO) *identity.Principal {
	roles := make([]identity.Role, 0, len(dto.Roles))
	for _, r := range dto.Roles {
		roles = append(roles, identity.Role(r.Role))
	}

	perms := make([]identity.Permission, 0, len(dto.Permissions))
	for _, p := range dto.Permissions {
		perms = append(perms, identity.Permission(p.Permission))
	}

	return &identity.Principal{
		UserID:      kernel.ID(dto.ID),
		Username:    dto.Username,
		Roles:       identity.NewRoleSet(roles...),
		Staff:       dto.IsStaff,
		Permissions: perms,
	}
}
