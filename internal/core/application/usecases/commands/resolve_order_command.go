package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/pkg/guard"
)

var ErrResolveOrderCommandIsNotConstructed = errors.New(
	"ResolveOrderCommand must be created via NewResolveOrderCommand constructor",
)

// ResolveOrderCommand moves an active order to history with a terminal status.
// It is issued by the staff (success or failed) and by the expiry timer (failed).
type ResolveOrderCommand struct {
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewResolveOrderCommand(orderID kernel.UUID, status order.Status) (ResolveOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), status.ValidateTerminal()); err != nil {
		return ResolveOrderCommand{}, err
	}

	return ResolveOrderCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveOrderCommand) Validate() error {
	return c.guard.Validate(ErrResolveOrderCommandIsNotConstructed)
}

func (c ResolveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ResolveOrderCommand) Status() order.Status {
	return c.status
}
