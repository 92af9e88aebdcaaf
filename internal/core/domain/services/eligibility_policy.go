package services

import (
	"pickup/internal/core/domain/model/member"
)

// EligibilityPolicy applies the daily order limit.
//
// Business rules:
//   - Premium members may place any number of orders per day
//   - Standard members may place one order per calendar day; an order counts
//     whether it is still active or already resolved, successfully or not
//
// Example usage:
//
//	policy := services.NewEligibilityPolicy()
//	count, _ := quotaRepo.CountForDay(ctx, m.ID(), today)
//	if !policy.CanOrder(m, count) {
//	    return ErrQuotaExceeded
//	}
type EligibilityPolicy struct{}

func NewEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{}
}

// CanOrder reports whether m may place an order given the number of orders it
// already holds for the day.
func (EligibilityPolicy) CanOrder(m *member.Member, ordersToday int) bool {
	if m.IsPremium() {
		return true
	}
	return ordersToday == 0
}

// NeedsClaim reports whether a new order of m must take the member's daily claim.
func (EligibilityPolicy) NeedsClaim(m *member.Member) bool {
	return !m.IsPremium()
}
