// Package member models the customer placing orders and the tier that decides
// how many orders the customer may place per day.
package member

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/guard"
)

var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

// Tier is the subscription level of a member.
type Tier int

const (
	// Standard members may hold one order (active or resolved) per calendar day.
	Standard Tier = iota
	// Premium members are exempt from the daily limit.
	Premium
)

func (t Tier) String() string {
	if t == Premium {
		return "premium"
	}
	return "standard"
}

// TierOf maps the subscription flag stored with the user to a Tier.
func TierOf(subscribed bool) Tier {
	if subscribed {
		return Premium
	}
	return Standard
}

// Member is a customer of the pickup service.
type Member struct {
	id   kernel.UUID
	tier Tier

	guard guard.ConstructorGuard
}

func NewMember(id kernel.UUID, tier Tier) (*Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Member{id: id, tier: tier, guard: guard.NewConstructorGuard()}, nil
}

func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) ID() kernel.UUID {
	return m.id
}

func (m *Member) Tier() Tier {
	return m.tier
}

// IsPremium reports whether the member is exempt from the daily limit.
func (m *Member) IsPremium() bool {
	return m.tier == Premium
}
