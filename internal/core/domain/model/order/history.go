package order

import (
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrHistoryIsNotConstructed = errors.New("History must be created via Order.Resolve or RestoreHistory")

// History is the immutable record of a resolved order. It keeps the order id so
// that an order id is found either among active orders or in history, never both.
type History struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID
	date         kernel.LocalDate
	lines        []Line
	status       Status
	resolvedAt   time.Time

	guard guard.ConstructorGuard
}

// RestoreHistory rebuilds a history record from persisted state.
func RestoreHistory(
	id, userID, restaurantID kernel.UUID,
	date kernel.LocalDate,
	lines []Line,
	status Status,
	resolvedAt time.Time,
) (*History, error) {
	h := &History{guard: guard.NewConstructorGuard()}

	var linesErr error
	if len(lines) == 0 {
		linesErr = ErrOrderHasNoLines
	}
	var resolvedAtErr error
	if resolvedAt.IsZero() {
		resolvedAtErr = errs.NewValueIsRequiredError("resolved at")
	}

	if err := errors.Join(
		setUUID(&h.id, id),
		setUUID(&h.userID, userID),
		setUUID(&h.restaurantID, restaurantID),
		date.Validate(),
		status.ValidateTerminal(),
		linesErr,
		resolvedAtErr,
	); err != nil {
		return nil, err
	}

	h.date = date
	h.status = status
	h.resolvedAt = resolvedAt
	h.lines = make([]Line, len(lines))
	copy(h.lines, lines)
	return h, nil
}

func (h *History) Validate() error {
	if h == nil {
		return ErrHistoryIsNotConstructed
	}
	return h.guard.Validate(ErrHistoryIsNotConstructed)
}

func (h *History) ID() kernel.UUID {
	return h.id
}

func (h *History) UserID() kernel.UUID {
	return h.userID
}

func (h *History) RestaurantID() kernel.UUID {
	return h.restaurantID
}

func (h *History) Date() kernel.LocalDate {
	return h.date
}

func (h *History) Status() Status {
	return h.status
}

func (h *History) ResolvedAt() time.Time {
	return h.resolvedAt
}

// Lines returns a copy of the recorded lines.
func (h *History) Lines() []Line {
	out := make([]Line, len(h.lines))
	copy(out, h.lines)
	return out
}

// Total sums the line totals.
func (h *History) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range h.lines {
		total = total.Add(l.Total())
	}
	return total
}
