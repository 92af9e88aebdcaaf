package commands

import (
	"context"

	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/ports"
)

// RearmExpiriesCommandHandler schedules an expiry for every active order at its
// restaurant's close time on the order date. Deadlines already in the past
// fire right away.
type RearmExpiriesCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
	scheduler  ports.ExpiryScheduler
	clock      ports.Clock
}

func NewRearmExpiriesCommandHandler(
	uowFactory OrderCatalogUoWFactory,
	scheduler ports.ExpiryScheduler,
	clock ports.Clock,
) RearmExpiriesCommandHandler {
	return RearmExpiriesCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle returns the number of orders scheduled.
func (h RearmExpiriesCommandHandler) Handle(ctx context.Context, command RearmExpiriesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	active, err := uow.OrderRepository().ListActive(ctx)
	if err != nil {
		return 0, err
	}

	catalogRepo := uow.CatalogRepository()
	restaurants := make(map[kernel.UUID]*catalog.Restaurant)

	for _, o := range active {
		restaurant, ok := restaurants[o.RestaurantID()]
		if !ok {
			restaurant, err = catalogRepo.GetRestaurant(ctx, o.RestaurantID())
			if err != nil {
				return 0, err
			}
			restaurants[o.RestaurantID()] = restaurant
		}

		h.scheduler.ScheduleExpiry(o.ID(), restaurant.ExpiryDeadline(o.Date(), h.clock.Location()))
	}

	return len(active), nil
}
