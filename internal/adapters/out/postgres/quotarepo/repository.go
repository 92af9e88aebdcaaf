// Package quotarepo enforces the one-order-per-day limit of standard members.
package quotarepo

import (
	"context"
	"time"

	"pickup/internal/adapters/out/postgres/storeerr"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyOrderClaimDTO is keyed by (user, date): its primary key is what
// rejects a second same-day order of a standard member, even under
// concurrent placements. Claims are never deleted.
type DailyOrderClaimDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderDate time.Time `gorm:"type:date;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	ClaimedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (DailyOrderClaimDTO) TableName() string {
	return "daily_order_claims"
}

// GormQuotaRepository implements ports.QuotaRepository using GORM.
type GormQuotaRepository struct {
	db *gorm.DB
}

func NewGormQuotaRepository(db *gorm.DB) *GormQuotaRepository {
	return &GormQuotaRepository{db: db}
}

// CountForDay counts active and resolved orders of the user dated date.
func (r *GormQuotaRepository) CountForDay(ctx context.Context, userID kernel.UUID, date kernel.LocalDate) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT count(*) FROM orders WHERE user_id = @user AND order_date = @date) +
			(SELECT count(*) FROM order_histories WHERE user_id = @user AND order_date = @date)
	`, map[string]any{
		"user": userID.Bytes(),
		"date": date.Midnight(),
	}).Scan(&count).Error
	if err != nil {
		return 0, storeerr.Wrap("count orders for day", err)
	}
	return int(count), nil
}

// Claim inserts the (user, date) claim. A concurrent claim for the same key
// waits for the first to commit, then finds the conflict and reports
// ports.ErrDailyQuotaTaken.
func (r *GormQuotaRepository) Claim(
	ctx context.Context,
	userID kernel.UUID,
	date kernel.LocalDate,
	orderID kernel.UUID,
) error {
	dto := DailyOrderClaimDTO{
		UserID:    userID.Bytes(),
		OrderDate: date.Midnight(),
		OrderID:   orderID.Bytes(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return storeerr.Wrap("claim daily order", result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ErrDailyQuotaTaken
	}
	return nil
}
