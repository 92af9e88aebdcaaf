package ports

import (
	"time"

	"pickup/internal/core/domain/model/kernel"
)

// ExpiryScheduler arranges for an order to be resolved as failed at deadline.
//
// Scheduling is fire-and-forget: a fire for an order that was already resolved
// does nothing. Scheduling the same order twice keeps a single timer.
type ExpiryScheduler interface {
	ScheduleExpiry(orderID kernel.UUID, deadline time.Time)
}
