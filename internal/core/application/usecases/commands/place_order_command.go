package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand asks to add quantity units of a food item to the user's
// order at a restaurant for today.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(userID, restaurantID, foodID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	userID       kernel.UUID
	restaurantID kernel.UUID
	foodItemID   kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(userID, restaurantID, foodItemID kernel.UUID, quantity int) (PlaceOrderCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	if err := errors.Join(
		userID.Validate(),
		restaurantID.Validate(),
		foodItemID.Validate(),
		quantityErr,
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		userID:       userID,
		restaurantID: restaurantID,
		foodItemID:   foodItemID,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c PlaceOrderCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}
