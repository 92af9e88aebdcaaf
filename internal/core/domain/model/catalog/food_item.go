package catalog

import (
	"errors"
	"strings"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem constructor")

	// ErrInsufficientStock is returned by the inventory ledger when the requested
	// quantity exceeds the stock at reservation time.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// FoodItem is a dish sold by one restaurant, with its current stock.
type FoodItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	stock        int

	guard guard.ConstructorGuard
}

// NewFoodItem validates and builds a FoodItem.
func NewFoodItem(
	id, restaurantID kernel.UUID,
	name string,
	price decimal.Decimal,
	stock int,
) (*FoodItem, error) {
	f := &FoodItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		f.setID(id),
		f.setRestaurantID(restaurantID),
		f.setName(name),
		f.setPrice(price),
		f.setStock(stock),
	); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *FoodItem) Validate() error {
	if f == nil {
		return ErrFoodItemIsNotConstructed
	}
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

func (f *FoodItem) ID() kernel.UUID {
	return f.id
}

func (f *FoodItem) RestaurantID() kernel.UUID {
	return f.restaurantID
}

func (f *FoodItem) Name() string {
	return f.name
}

func (f *FoodItem) Price() decimal.Decimal {
	return f.price
}

// Stock is the stock observed when the item was loaded; the ledger is the
// authority for the live value.
func (f *FoodItem) Stock() int {
	return f.stock
}

// OfferedBy reports whether the item belongs to the given restaurant.
func (f *FoodItem) OfferedBy(restaurantID kernel.UUID) bool {
	return f.restaurantID.IsEqual(restaurantID)
}

func (f *FoodItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *FoodItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.restaurantID = id
	return nil
}

func (f *FoodItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("food name")
	}
	f.name = name
	return nil
}

func (f *FoodItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", "unbounded")
	}
	f.price = price
	return nil
}

func (f *FoodItem) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	f.stock = stock
	return nil
}
