// Package queries contains read-only use cases. Handlers read the database
// directly with raw SQL and return flat response structs, bypassing the
// aggregates.
package queries

import (
	"time"

	"pickup/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineResponse is one line of an order as shown to the customer.
type OrderLineResponse struct {
	FoodItemID kernel.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
}

// orderLineRow is the joined row shape shared by the order queries.
type orderLineRow struct {
	orderID      uuid.UUID
	restaurantID uuid.UUID
	orderDate    time.Time
	foodItemID   uuid.UUID
	quantity     int
	unitPrice    decimal.Decimal
}

func (r orderLineRow) ids() (orderID, restaurantID kernel.UUID, err error) {
	orderID, err = kernel.UUIDFromBytes(r.orderID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	restaurantID, err = kernel.UUIDFromBytes(r.restaurantID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderID, restaurantID, nil
}

func (r orderLineRow) line() (OrderLineResponse, error) {
	foodItemID, err := kernel.UUIDFromBytes(r.foodItemID[:])
	if err != nil {
		return OrderLineResponse{}, err
	}
	return OrderLineResponse{
		FoodItemID: foodItemID,
		Quantity:   r.quantity,
		UnitPrice:  r.unitPrice,
	}, nil
}
