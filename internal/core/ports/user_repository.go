package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

// UserRepository is the identity provider: accounts, their roles and their
// model-level permissions.
type UserRepository interface {
	// Register creates an account with a hashed password. A taken username fails
	// with a ValueIsInvalidError.
	Register(ctx context.Context, reg identity.Registration) (kernel.ID, error)

	// Authenticate resolves credentials to a principal. An unknown username is an
	// ObjectNotFoundError, a wrong password a ValueIsInvalidError.
	Authenticate(ctx context.Context, creds identity.Credentials) (*identity.Principal, error)

	// Principal loads the roles, staff flag and permissions of a user.
	Principal(ctx context.Context, id kernel.ID) (*identity.Principal, error)

	// AddRole enrols the user in the role. Enrolling twice is not an error.
	AddRole(ctx context.Context, userID kernel.ID, role identity.Role) error

	// RemoveRole drops the membership. Removing an absent membership is not an error.
	RemoveRole(ctx context.Context, userID kernel.ID, role identity.Role) error

	// HasRole reports whether an existing user holds the role.
	HasRole(ctx context.Context, userID kernel.ID, role identity.Role) (bool, error)
}
