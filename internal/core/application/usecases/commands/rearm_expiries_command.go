package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrRearmExpiriesCommandIsNotConstructed = errors.New(
	"RearmExpiriesCommand must be created via NewRearmExpiriesCommand constructor",
)

// RearmExpiriesCommand re-creates the expiry timers of all active orders.
// Timers live in memory only, so this runs once on every start.
type RearmExpiriesCommand struct {
	guard guard.ConstructorGuard
}

func NewRearmExpiriesCommand() RearmExpiriesCommand {
	return RearmExpiriesCommand{guard: guard.NewConstructorGuard()}
}

func (c RearmExpiriesCommand) Validate() error {
	return c.guard.Validate(ErrRearmExpiriesCommandIsNotConstructed)
}
