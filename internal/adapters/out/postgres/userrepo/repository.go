package userrepo

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCredentialsMismatch = errors.New("credentials do not match")

// GormUserRepository implements UserRepository using GORM and bcrypt password hashes.
type GormUserRepository struct {
	db   *gorm.DB
	cost int
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db, cost: bcrypt.DefaultCost}
}

// WithHashCost returns a copy hashing new passwords at the given bcrypt cost.
func (r *GormUserRepository) WithHashCost(cost int) *GormUserRepository {
	return &GormUserRepository{db: r.db, cost: cost}
}

func (r *GormUserRepository) Register(ctx context.Context, reg identity.Registration) (kernel.ID, error) {
	if err := reg.Validate(); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), r.cost)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	dto := UserDTO{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: string(hash),
		DateJoined:   time.Now().UTC(),
	}
	err = r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, errs.NewValueIsInvalidErrorWithCause("username",
			errors.New("a user with that username already exists"))
	}
	if err != nil {
		return 0, err
	}

	return kernel.ID(dto.ID), nil
}

func (r *GormUserRepository) Authenticate(ctx context.Context, creds identity.Credentials) (*identity.Principal, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.preloaded(ctx).First(&dto, "username = ?", creds.Username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("user", creds.Username)
	}
	if err != nil {
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(dto.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("credentials", ErrCredentialsMismatch)
	}

	return toPrincipal(dto), nil
}

func (r *GormUserRepository) Principal(ctx context.Context, id kernel.ID) (*identity.Principal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.preloaded(ctx).First(&dto, id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	if err != nil {
		return nil, err
	}

	return toPrincipal(dto), nil
}

func (r *GormUserRepository) AddRole(ctx context.Context, userID kernel.ID, role identity.Role) error {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&UserRoleDTO{UserID: userID.Int64(), Role: int16(role)}).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewObjectNotFoundErrorWithCause("user", userID, err)
	}
	return err
}

func (r *GormUserRepository) RemoveRole(ctx context.Context, userID kernel.ID, role identity.Role) error {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID.Int64(), int16(role)).
		Delete(&UserRoleDTO{}).Error
}

func (r *GormUserRepository) HasRole(ctx context.Context, userID kernel.ID, role identity.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserRoleDTO{}).
		Where("user_id = ? AND role = ?", userID.Int64(), int16(role)).
		Count(&count).Error
	return count > 0, err
}

// Grant adds model permissions to a user.
func (r *GormUserRepository) Grant(ctx context.Context, userID kernel.ID, perms ...identity.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	dtos := make([]UserPermissionDTO, 0, len(perms))
	for _, p := range perms {
		dtos = append(dtos, UserPermissionDTO{UserID: userID.Int64(), Permission: string(p)})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos).Error
}

func (r *GormUserRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Roles").Preload("Permissions")
}
