package cartrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add inserts the line. The unique (user, menu item) index turns a second add of the
// same item into a ValueIsInvalidError.
func (r *GormCartRepository) Add(ctx context.Context, line *cart.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewValueIsInvalidErrorWithCause("menuitem",
			errors.New("the fields user, menuitem must make a unique set"))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewValueIsInvalidErrorWithCause("menuitem", err)
	case err != nil:
		return err
	}

	return line.SetID(kernel.ID(dto.ID))
}

// LockByUser selects the lines FOR UPDATE. It must run inside a transaction.
func (r *GormCartRepository) LockByUser(ctx context.Context, userID kernel.ID) ([]*cart.Line, error) {
	var dtos []CartLineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("user_id = ?", userID.Int64()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, nil
}

func (r *GormCartRepository) DeleteByUser(ctx context.Context, userID kernel.ID) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID.Int64()).Delete(&CartLineDTO{})
	return result.RowsAffected, result.Error
}
