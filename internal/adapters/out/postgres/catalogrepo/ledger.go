package catalogrepo

import (
	"context"

	"pickup/internal/adapters/out/postgres/storeerr"
	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryLedger implements ports.InventoryLedger as conditional updates
// of foods.quantity.
//
// TryReserve issues
//
//	UPDATE foods SET quantity = quantity - $qty WHERE id = $id AND quantity >= $qty
//
// and treats zero affected rows as insufficient stock, so the check and the
// decrement are one statement and cannot interleave with another reservation.
type GormInventoryLedger struct {
	db *gorm.DB
}

func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

func (l *GormInventoryLedger) TryReserve(
	ctx context.Context,
	itemID kernel.UUID,
	quantity int,
) (catalog.Reservation, error) {
	reservation, err := catalog.NewReservation(itemID, quantity)
	if err != nil {
		return catalog.Reservation{}, err
	}

	result := l.db.WithContext(ctx).
		Model(&FoodItemDTO{}).
		Where("id = ? AND quantity >= ?", itemID.Bytes(), quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return catalog.Reservation{}, storeerr.Wrap("reserve stock", result.Error)
	}

	if result.RowsAffected == 0 {
		if err := l.ensureExists(ctx, itemID); err != nil {
			return catalog.Reservation{}, err
		}
		return catalog.Reservation{}, catalog.ErrInsufficientStock
	}

	return reservation, nil
}

func (l *GormInventoryLedger) Release(ctx context.Context, itemID kernel.UUID, quantity int) error {
	if _, err := catalog.NewReservation(itemID, quantity); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).
		Model(&FoodItemDTO{}).
		Where("id = ?", itemID.Bytes()).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return storeerr.Wrap("release stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food item", itemID.String())
	}

	return nil
}

// Stock reads the current stock of an item.
func (l *GormInventoryLedger) Stock(ctx context.Context, itemID kernel.UUID) (int, error) {
	var dto FoodItemDTO
	if err := l.db.WithContext(ctx).Select("quantity").First(&dto, "id = ?", itemID.Bytes()).Error; err != nil {
		return 0, storeerr.NotFound("read stock", "food item", itemID.String(), err)
	}
	return dto.Quantity, nil
}

func (l *GormInventoryLedger) ensureExists(ctx context.Context, itemID kernel.UUID) error {
	var count int64
	if err := l.db.WithContext(ctx).Model(&FoodItemDTO{}).Where("id = ?", itemID.Bytes()).Count(&count).Error; err != nil {
		return storeerr.Wrap("reserve stock", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("food item", itemID.String())
	}
	return nil
}
