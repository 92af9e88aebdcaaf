// Package ports defines the contracts between the order core and its
// infrastructure: persistence, stock accounting, expiry scheduling, event
// publishing and time. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
)

// OrderRepository stores active orders and moves them to history.
//
// Active orders are unique per (user, restaurant, order date); an order id is
// found among active orders or in history, never in both.
type OrderRepository interface {
	// CreateOrAppend stores candidate as a new active order, or, when an active
	// order already exists for the candidate's (user, restaurant, date), appends
	// the candidate's lines to it instead. It returns the id of the order that
	// holds the lines and whether a new order was created.
	//
	// Concurrent calls with the same key never create two orders.
	CreateOrAppend(ctx context.Context, candidate *order.Order) (kernel.UUID, bool, error)

	// Get returns the active order with its lines, which is what a resolution
	// reads before compensating stock. Inside a transaction the order row stays
	// locked until commit or rollback.
	// Returns errs.ObjectNotFoundError when no active order has that id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Resolve stores history and deletes the active order with the same id.
	Resolve(ctx context.Context, history *order.History) error

	// ListActive returns every active order, oldest date first.
	ListActive(ctx context.Context) ([]*order.Order, error)

	// ListOverdue returns the ids of active orders whose restaurant closed before
	// the given moment: orders dated before today, and today's orders whose
	// restaurant close time is not after now.
	ListOverdue(ctx context.Context, today kernel.LocalDate, now kernel.TimeOfDay) ([]kernel.UUID, error)
}
