package order

import (
	"errors"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order would be left without lines.
	ErrOrderHasNoLines = errors.New("order must have at least one line")
)

// Order is the active order of one user at one restaurant for one calendar day.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, the user and the restaurant
//   - Must be dated (the service-zone calendar day it was placed on)
//   - Holds at least one line; lines are only ever appended
//   - Is always Active; resolving produces a History and retires the Order
//
// A premium user may add further lines to the same Order during the day, so the
// key (user, restaurant, date) identifies at most one active Order.
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID
	date         kernel.LocalDate
	lines        []Line

	guard guard.ConstructorGuard
}

// NewOrder creates an active order with its first line.
//
// Example:
//
//	line, _ := order.NewLine(foodID, 2, decimal.RequireFromString("12.50"))
//	o, err := order.NewOrder(kernel.NewUUID(), userID, restaurantID, kernel.LocalDateOf(now), line)
func NewOrder(id, userID, restaurantID kernel.UUID, date kernel.LocalDate, first Line) (*Order, error) {
	return RestoreOrder(id, userID, restaurantID, date, []Line{first})
}

// RestoreOrder rebuilds an active order from persisted state.
func RestoreOrder(id, userID, restaurantID kernel.UUID, date kernel.LocalDate, lines []Line) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setUUID(&o.id, id),
		setUUID(&o.userID, userID),
		setUUID(&o.restaurantID, restaurantID),
		o.setDate(date),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) Date() kernel.LocalDate {
	return o.date
}

// Status is always Active for an Order.
func (o *Order) Status() Status {
	return Active
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// AddLine appends a line to the order.
func (o *Order) AddLine(line Line) error {
	if err := line.validate(); err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

// Resolve turns the order into its history record with a terminal status.
//
// The returned History carries the same id, user, restaurant, date and lines.
// The caller is responsible for deleting the active order in the same unit of
// work that stores the History.
func (o *Order) Resolve(status Status, at time.Time) (*History, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateTerminal(); err != nil {
		return nil, err
	}
	return RestoreHistory(o.id, o.userID, o.restaurantID, o.date, o.Lines(), status, at)
}

func (o *Order) setDate(date kernel.LocalDate) error {
	if err := date.Validate(); err != nil {
		return err
	}
	o.date = date
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for i, l := range lines {
		if err := l.validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("line %d", i), err)
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func setUUID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
