package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the repositories of one order operation around an
// optional transaction.
//
// Repositories fetched before Begin autocommit each statement. Repositories
// fetched after Begin share the transaction until Commit or Rollback, so a
// placement's stock reservation commits or rolls back with its order line.
// Rollback after Commit is a harmless error, so it may be deferred
// unconditionally.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	QuotaRepository() QuotaRepository
	InventoryLedger() InventoryLedger
	CatalogRepository() CatalogRepository
	MemberRepository() MemberRepository
}
