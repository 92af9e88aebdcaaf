package catalog

import (
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

// Reservation records a provisional stock decrement of one food item.
// Releasing it adds Quantity back to the item's stock.
type Reservation struct {
	itemID   kernel.UUID
	quantity int
}

// NewReservation builds a reservation token for a positive quantity.
func NewReservation(itemID kernel.UUID, quantity int) (Reservation, error) {
	if err := itemID.Validate(); err != nil {
		return Reservation{}, err
	}
	if quantity <= 0 {
		return Reservation{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return Reservation{itemID: itemID, quantity: quantity}, nil
}

func (r Reservation) ItemID() kernel.UUID {
	return r.itemID
}

func (r Reservation) Quantity() int {
	return r.quantity
}
