package queries

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists the unresolved orders of one user.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(userID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(userID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	return GetActiveOrdersQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetActiveOrdersQueryResponse is an active order with its lines in insertion order.
type GetActiveOrdersQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Date         kernel.LocalDate
	Lines        []OrderLineResponse
}
