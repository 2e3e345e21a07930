package catalogrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Add(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("slug", errors.New("category with this slug already exists"))
	}
	if err != nil {
		return err
	}

	return category.SetID(kernel.ID(dto.ID))
}

func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Category, error) {
	var dto CategoryDTO
	err := r.db.WithContext(ctx).First(&dto, id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("category", id)
	}
	if err != nil {
		return nil, err
	}

	return categoryToDomain(dto)
}

type GormMenuItemRepository struct {
	db *gorm.DB
}

func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewValueIsInvalidErrorWithCause("category", err)
	}
	if err != nil {
		return err
	}

	return item.SetID(kernel.ID(dto.ID))
}

func (r *GormMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"title":       dto.Title,
		"price":       dto.Price,
		"featured":    dto.Featured,
		"category_id": dto.CategoryID,
	})
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return errs.NewValueIsInvalidErrorWithCause("category", result.Error)
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuitem", item.ID())
	}

	return nil
}

func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.ID) (*catalog.MenuItem, error) {
	var dto MenuItemDTO
	err := r.db.WithContext(ctx).First(&dto, id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("menuitem", id)
	}
	if err != nil {
		return nil, err
	}

	return menuItemToDomain(dto)
}

// Delete relies on the schema: cart lines cascade, order items restrict.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, id.Int64())
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return errs.NewValueIsInvalidErrorWithCause("menuitem",
			errors.New("menu item is part of placed orders and cannot be deleted"))
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuitem", id)
	}
	return nil
}
