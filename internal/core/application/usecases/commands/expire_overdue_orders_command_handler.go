package commands

import (
	"context"
	"errors"
	"fmt"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
)

// ExpireOverdueOrdersCommandHandler resolves overdue orders as failed through
// the regular resolution path, so stock is returned exactly once even when a
// timer fires for the same order concurrently.
type ExpireOverdueOrdersCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
	resolver   OrderResolver
	clock      ports.Clock
}

func NewExpireOverdueOrdersCommandHandler(
	uowFactory OrderCatalogUoWFactory,
	resolver OrderResolver,
	clock ports.Clock,
) ExpireOverdueOrdersCommandHandler {
	return ExpireOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		clock:      clock,
	}
}

// Handle returns how many overdue orders were handed to the resolver. Errors of
// individual resolutions are joined; the remaining orders are still processed.
func (h ExpireOverdueOrdersCommandHandler) Handle(ctx context.Context, command ExpireOverdueOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	ids, err := h.uowFactory.Create().OrderRepository().
		ListOverdue(ctx, kernel.LocalDateOf(now), kernel.TimeOfDayOf(now))
	if err != nil {
		return 0, err
	}

	var joined error
	for _, id := range ids {
		cmd, err := NewResolveOrderCommand(id, order.Failed)
		if err != nil {
			joined = errors.Join(joined, err)
			continue
		}
		if err := h.resolver.Handle(ctx, cmd); err != nil {
			joined = errors.Join(joined, fmt.Errorf("expire order %s: %w", id, err))
		}
	}

	return len(ids), joined
}
