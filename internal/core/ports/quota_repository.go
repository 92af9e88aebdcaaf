package ports

import (
	"context"
	"errors"

	"pickup/internal/core/domain/model/kernel"
)

// ErrDailyQuotaTaken is returned by QuotaRepository.Claim when the user already
// holds the claim for that date.
var ErrDailyQuotaTaken = errors.New("daily order quota already taken")

// QuotaRepository tracks how many orders a user placed on a calendar day.
type QuotaRepository interface {
	// CountForDay counts the user's active and resolved orders dated date.
	CountForDay(ctx context.Context, userID kernel.UUID, date kernel.LocalDate) (int, error)

	// Claim records that the user placed their one order of the day. Claims are
	// never removed, so a second claim for the same (user, date) fails with
	// ErrDailyQuotaTaken even after the first order was resolved.
	Claim(ctx context.Context, userID kernel.UUID, date kernel.LocalDate, orderID kernel.UUID) error
}
