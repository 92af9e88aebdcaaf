package order

import (
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is one food item of an order together with the quantity reserved for it.
// UnitPrice is the item price at the time the line was added.
type Line struct {
	foodItemID kernel.UUID
	quantity   int
	unitPrice  decimal.Decimal
}

func NewLine(foodItemID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Line, error) {
	l := Line{foodItemID: foodItemID, quantity: quantity, unitPrice: unitPrice}
	if err := l.validate(); err != nil {
		return Line{}, err
	}
	return l, nil
}

func (l Line) validate() error {
	if err := l.foodItemID.Validate(); err != nil {
		return err
	}
	if l.quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", l.quantity, 1, "unbounded")
	}
	if l.unitPrice.IsNegative() {
		return errs.NewValueIsOutOfRangeError("unit price", l.unitPrice.String(), "0", "unbounded")
	}
	return nil
}

func (l Line) FoodItemID() kernel.UUID {
	return l.foodItemID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Total is UnitPrice * Quantity.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
