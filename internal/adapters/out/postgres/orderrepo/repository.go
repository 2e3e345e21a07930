package orderrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order header and its items and hands the generated identities
// back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewValueIsInvalidErrorWithCause("order", err)
	case err != nil:
		return err
	}

	if err = aggregate.SetID(kernel.ID(dto.ID)); err != nil {
		return err
	}
	for i, item := range aggregate.Items() {
		if err = item.SetID(kernel.ID(dto.Items[i].ID)); err != nil {
			return err
		}
	}

	return nil
}

// Update writes delivery crew and status only; the rest of an order never changes.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"delivery_crew_id": dto.DeliveryCrewID,
		"status":           dto.Status,
	})
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return errs.NewValueIsInvalidErrorWithCause("delivery_crew", result.Error)
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}

// Get reports a non-positive id as not found since no such row can exist.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if id.Validate() != nil {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the items before the header so it does not depend on the cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if id.Validate() != nil {
		return errs.NewObjectNotFoundError("order", id)
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Int64()).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}
