// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Active orders live in orders/order_lines; resolved orders are moved to
// order_histories/order_history_lines under the same id.
package orderrepo

import (
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is an active order. The unique index on (user, restaurant, date)
// makes create-or-append race free.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_orders_active_key,priority:1"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_orders_active_key,priority:2"`
	OrderDate    time.Time      `gorm:"type:date;not null;uniqueIndex:idx_orders_active_key,priority:3"`
	CreatedAt    time.Time      `gorm:"not null"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one line of an active order; ID keeps insertion order.
type OrderLineDTO struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FoodItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// OrderHistoryDTO is a resolved order. It is written once and never updated.
type OrderHistoryDTO struct {
	ID           uuid.UUID             `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID             `gorm:"type:uuid;not null;index:idx_order_histories_user_date,priority:1"`
	RestaurantID uuid.UUID             `gorm:"type:uuid;not null"`
	OrderDate    time.Time             `gorm:"type:date;not null;index:idx_order_histories_user_date,priority:2"`
	Status       string                `gorm:"type:varchar(16);not null"`
	ResolvedAt   time.Time             `gorm:"not null"`
	Lines        []OrderHistoryLineDTO `gorm:"foreignKey:HistoryID;constraint:OnDelete:CASCADE"`
}

func (OrderHistoryDTO) TableName() string {
	return "order_histories"
}

type OrderHistoryLineDTO struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	HistoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	FoodItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderHistoryLineDTO) TableName() string {
	return "order_history_lines"
}

// Models lists every table owned by this package, for migrations.
func Models() []any {
	return []any{&OrderDTO{}, &OrderLineDTO{}, &OrderHistoryDTO{}, &OrderHistoryLineDTO{}}
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		UserID:       o.UserID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		OrderDate:    o.Date().Midnight(),
	}
}

func linesFromDomain(orderID uuid.UUID, lines []order.Line) []OrderLineDTO {
	dtos := make([]OrderLineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, OrderLineDTO{
			OrderID:    orderID,
			FoodItemID: l.FoodItemID().Bytes(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice(),
		})
	}
	return dtos
}

func orderToDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		line, err := lineToDomain(l.FoodItemID, l.Quantity, l.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, userID, restaurantID, kernel.LocalDateOf(dto.OrderDate), lines)
}

func lineToDomain(foodItemID uuid.UUID, quantity int, unitPrice decimal.Decimal) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(foodItemID[:])
	if err != nil {
		return order.Line{}, err
	}
	return order.NewLine(id, quantity, unitPrice)
}

func historyFromDomain(h *order.History) OrderHistoryDTO {
	id := h.ID().Bytes()
	lines := make([]OrderHistoryLineDTO, 0, len(h.Lines()))
	for _, l := range h.Lines() {
		lines = append(lines, OrderHistoryLineDTO{
			HistoryID:  id,
			FoodItemID: l.FoodItemID().Bytes(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice(),
		})
	}

	return OrderHistoryDTO{
		ID:           id,
		UserID:       h.UserID().Bytes(),
		RestaurantID: h.RestaurantID().Bytes(),
		OrderDate:    h.Date().Midnight(),
		Status:       h.Status().String(),
		ResolvedAt:   h.ResolvedAt(),
		Lines:        lines,
	}
}

func historyToDomain(dto OrderHistoryDTO) (*order.History, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := lineToDomain(l.FoodItemID, l.Quantity, l.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreHistory(id, userID, restaurantID, kernel.LocalDateOf(dto.OrderDate), lines, status, dto.ResolvedAt)
}
