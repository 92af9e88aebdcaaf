package commands

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
)

// Eligibility is the outcome of an eligibility check for one user and day.
type Eligibility struct {
	// Allowed is false when the user already used up the day's quota.
	Allowed bool
	// NeedsClaim is true for users whose new order must take the daily claim.
	NeedsClaim bool
}

// EligibilityChecker answers whether a user may place a new order on a date.
//
// The answer is a fast pre-check. Two concurrent placements of one standard
// user can both be allowed here; the daily claim written with the order
// rejects the second one.
type EligibilityChecker struct {
	members ports.MemberRepository
	quotas  ports.QuotaRepository
	policy  services.EligibilityPolicy
}

func NewEligibilityChecker(members ports.MemberRepository, quotas ports.QuotaRepository) EligibilityChecker {
	return EligibilityChecker{
		members: members,
		quotas:  quotas,
		policy:  services.NewEligibilityPolicy(),
	}
}

// CanOrder reports whether userID may place a new order dated date.
func (c EligibilityChecker) CanOrder(ctx context.Context, userID kernel.UUID, date kernel.LocalDate) (bool, error) {
	e, err := c.Evaluate(ctx, userID, date)
	if err != nil {
		return false, err
	}
	return e.Allowed, nil
}

// Evaluate loads the member and the day's order count and applies the policy.
func (c EligibilityChecker) Evaluate(ctx context.Context, userID kernel.UUID, date kernel.LocalDate) (Eligibility, error) {
	m, err := c.members.Get(ctx, userID)
	if err != nil {
		return Eligibility{}, err
	}

	if !c.policy.NeedsClaim(m) {
		return Eligibility{Allowed: true}, nil
	}

	count, err := c.quotas.CountForDay(ctx, userID, date)
	if err != nil {
		return Eligibility{}, err
	}

	return Eligibility{
		Allowed:    c.policy.CanOrder(m, count),
		NeedsClaim: true,
	}, nil
}
