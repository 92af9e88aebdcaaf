package queries

import (
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists the resolved orders of one user, newest first.
type GetOrderHistoryQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(userID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

type GetOrderHistoryQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Date         kernel.LocalDate
	Status       order.Status
	ResolvedAt   time.Time
	Lines        []OrderLineResponse
}
