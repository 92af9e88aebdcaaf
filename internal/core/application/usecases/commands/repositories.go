// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pickup/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	QuotaRepoFactory interface {
		QuotaRepository() ports.QuotaRepository
	}

	InventoryLedgerFactory interface {
		InventoryLedger() ports.InventoryLedger
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	// PlaceOrderUoW spans everything an order placement reads or writes.
	//
	// Example:
	//   uow := factory.Create()
	//   restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, id) // outside the transaction
	//
	//   err = uow.Begin(ctx)
	//   defer uow.Rollback(context.WithoutCancel(ctx)) // returns the reservation on failure
	//   reservation, err := uow.InventoryLedger().TryReserve(ctx, itemID, qty)
	//   orderID, created, err := uow.OrderRepository().CreateOrAppend(ctx, candidate)
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		QuotaRepoFactory
		InventoryLedgerFactory
		CatalogRepoFactory
		MemberRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// ResolveOrderUoW moves an order to history and returns its stock in one transaction.
	ResolveOrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryLedgerFactory
	}

	ResolveOrderUoWFactory interface {
		Create() ResolveOrderUoW
	}

	// OrderCatalogUoW reads active orders together with their restaurants.
	OrderCatalogUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	OrderCatalogUoWFactory interface {
		Create() OrderCatalogUoW
	}
)

// OrderResolver resolves one order; implemented by ResolveOrderCommandHandler.
type OrderResolver interface {
	Handle(ctx context.Context, command ResolveOrderCommand) error
}
