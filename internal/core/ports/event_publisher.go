package ports

import (
	"context"

	"pickup/internal/core/domain/model/order"
)

// OrderEventPublisher announces resolved orders to other services.
// Publishing happens after the resolution committed; failures do not undo it.
type OrderEventPublisher interface {
	PublishOrderResolved(ctx context.Context, history *order.History) error
}
