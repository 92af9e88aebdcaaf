package ports

import (
	"context"

	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"
)

// InventoryLedger owns the stock counters of food items.
//
// Every operation is a single atomic conditional update, so concurrent
// reservations of one item never drive its stock below zero.
type InventoryLedger interface {
	// TryReserve decrements the item's stock by quantity if at least quantity
	// is available. Returns catalog.ErrInsufficientStock otherwise, and
	// errs.ObjectNotFoundError for an unknown item.
	TryReserve(ctx context.Context, itemID kernel.UUID, quantity int) (catalog.Reservation, error)

	// Release adds quantity back to the item's stock.
	Release(ctx context.Context, itemID kernel.UUID, quantity int) error
}
