package commands

import (
	"context"
	"errors"

	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
)

// PlaceOrderCommandHandler runs an order placement.
//
// Steps, strictly in this order:
//  1. The restaurant must be open now, else ErrRestaurantClosed. Nothing else is touched.
//  2. The food item must belong to the restaurant, else ErrItemNotOffered.
//  3. A transaction is opened and stock is reserved in it, else ErrOutOfStock.
//  4. The user must be eligible today, else ErrQuotaExceeded.
//  5. The line is stored, creating today's order or appending to it. Only premium
//     users append. A standard user's order also takes the daily claim; losing
//     that race returns ErrQuotaExceeded.
//  6. After commit, a newly created order gets an expiry timer at the
//     restaurant's close time.
//
// The reservation commits together with the order line. Every failure after
// step 3 rolls the transaction back, which returns the reserved stock.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, scheduler, clock)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case IsRejection(err):
//	    // tell the customer why
//	case err != nil:
//	    // infrastructure fault
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	scheduler  ports.ExpiryScheduler
	clock      ports.Clock
}

func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	scheduler ports.ExpiryScheduler,
	clock ports.Clock,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle places the order and returns the id of the order holding the new line.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	catalogRepo := uow.CatalogRepository()

	restaurant, err := catalogRepo.GetRestaurant(ctx, command.RestaurantID())
	if err != nil {
		return kernel.UUID{}, err
	}

	now := h.clock.Now()
	if !restaurant.IsOpenAt(now) {
		return kernel.UUID{}, ErrRestaurantClosed
	}
	date := kernel.LocalDateOf(now)

	item, err := catalogRepo.GetFoodItem(ctx, command.FoodItemID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !item.OfferedBy(restaurant.ID()) {
		return kernel.UUID{}, ErrItemNotOffered
	}

	orderID, created, err := h.store(ctx, uow, command, item, date)
	if err != nil {
		return kernel.UUID{}, err
	}

	if created {
		h.scheduler.ScheduleExpiry(orderID, restaurant.ExpiryDeadline(date, h.clock.Location()))
	}

	return orderID, nil
}

// store reserves stock, checks eligibility and writes the line in one
// transaction. It commits only when every step succeeded.
func (h PlaceOrderCommandHandler) store(
	ctx context.Context,
	uow PlaceOrderUoW,
	command PlaceOrderCommand,
	item *catalog.FoodItem,
	date kernel.LocalDate,
) (kernel.UUID, bool, error) {
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, false, err
	}
	defer func() {
		// The request context may already be cancelled here.
		_ = uow.Rollback(context.WithoutCancel(ctx))
	}()

	_, err := uow.InventoryLedger().TryReserve(ctx, item.ID(), command.Quantity())
	if errors.Is(err, catalog.ErrInsufficientStock) {
		return kernel.UUID{}, false, ErrOutOfStock
	}
	if err != nil {
		return kernel.UUID{}, false, err
	}

	eligibility, err := NewEligibilityChecker(uow.MemberRepository(), uow.QuotaRepository()).
		Evaluate(ctx, command.UserID(), date)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if !eligibility.Allowed {
		return kernel.UUID{}, false, ErrQuotaExceeded
	}

	line, err := order.NewLine(item.ID(), command.Quantity(), item.Price())
	if err != nil {
		return kernel.UUID{}, false, err
	}
	candidate, err := order.NewOrder(kernel.NewUUID(), command.UserID(), command.RestaurantID(), date, line)
	if err != nil {
		return kernel.UUID{}, false, err
	}

	orderID, created, err := uow.OrderRepository().CreateOrAppend(ctx, candidate)
	if err != nil {
		return kernel.UUID{}, false, err
	}

	if eligibility.NeedsClaim {
		if !created {
			return kernel.UUID{}, false, ErrQuotaExceeded
		}
		err = uow.QuotaRepository().Claim(ctx, command.UserID(), date, orderID)
		if errors.Is(err, ports.ErrDailyQuotaTaken) {
			return kernel.UUID{}, false, ErrQuotaExceeded
		}
		if err != nil {
			return kernel.UUID{}, false, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, false, err
	}

	return orderID, created, nil
}
