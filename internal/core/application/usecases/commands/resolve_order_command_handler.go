package commands

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

// ResolveOrderCommandHandler moves an active order to history.
//
// The active order row is locked for the whole transaction, so of two
// concurrent resolutions of one order exactly one moves it; the other finds no
// active order and returns nil without touching stock. A failed order returns
// every line's quantity to inventory inside the same transaction.
//
// After commit an OrderResolved event is published. Publishing errors are
// logged and do not fail the resolution.
//
// Example:
//
//	cmd, _ := NewResolveOrderCommand(orderID, order.Succeeded)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // store unavailable; the order is still active
//	}
type ResolveOrderCommandHandler struct {
	uowFactory ResolveOrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

func NewResolveOrderCommandHandler(
	uowFactory ResolveOrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) ResolveOrderCommandHandler {
	return ResolveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "resolve_order_handler"),
	}
}

func (h ResolveOrderCommandHandler) Handle(ctx context.Context, command ResolveOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	history, err := h.resolve(ctx, command)
	if err != nil {
		return err
	}
	if history == nil {
		return nil
	}

	if err := h.publisher.PublishOrderResolved(ctx, history); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order resolution",
			"order_id", history.ID().String(), "error", err)
	}

	return nil
}

// resolve returns nil history when the order was not active.
func (h ResolveOrderCommandHandler) resolve(ctx context.Context, command ResolveOrderCommand) (*order.History, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	active, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if command.Status() == order.Failed {
		ledger := uow.InventoryLedger()
		for _, r := range releasesOf(active.Lines()) {
			if err := ledger.Release(ctx, r.itemID, r.quantity); err != nil {
				return nil, err
			}
		}
	}

	history, err := active.Resolve(command.Status(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := orderRepo.Resolve(ctx, history); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return history, nil
}

type release struct {
	itemID   kernel.UUID
	quantity int
}

// releasesOf sums line quantities per food item, ordered by item id so that
// concurrent resolutions lock inventory rows in the same order.
func releasesOf(lines []order.Line) []release {
	byItem := make(map[kernel.UUID]int, len(lines))
	for _, line := range lines {
		byItem[line.FoodItemID()] += line.Quantity()
	}

	releases := make([]release, 0, len(byItem))
	for itemID, quantity := range byItem {
		releases = append(releases, release{itemID: itemID, quantity: quantity})
	}
	slices.SortFunc(releases, func(a, b release) int {
		return strings.Compare(a.itemID.String(), b.itemID.String())
	})
	return releases
}
