package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrExpireOverdueOrdersCommandIsNotConstructed = errors.New(
	"ExpireOverdueOrdersCommand must be created via NewExpireOverdueOrdersCommand constructor",
)

// ExpireOverdueOrdersCommand fails every active order whose restaurant has
// already closed. It backs up the in-memory expiry timers.
type ExpireOverdueOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireOverdueOrdersCommand() ExpireOverdueOrdersCommand {
	return ExpireOverdueOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpireOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverdueOrdersCommandIsNotConstructed)
}
