// Package postgres provides the GORM-based Unit of Work of the pickup service
// and the schema migration of every table it manages.
//
// A unit of work hands out repositories bound either to the plain connection
// (before Begin, each statement commits on its own) or to the open
// transaction (between Begin and Commit/Rollback).
//
// Usage:
//
//	uow := factory.Create()
//
//	// Autocommit read
//	restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, restaurantID)
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(context.WithoutCancel(ctx))
//
//	// All inside the transaction
//	reservation, err := uow.InventoryLedger().TryReserve(ctx, itemID, qty)
//	id, created, err := uow.OrderRepository().CreateOrAppend(ctx, candidate)
//	err = uow.QuotaRepository().Claim(ctx, userID, date, id)
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Row locks taken by OrderRepository live until Commit or Rollback
package postgres

import (
	"context"

	"pickup/internal/adapters/out/postgres/catalogrepo"
	"pickup/internal/adapters/out/postgres/memberrepo"
	"pickup/internal/adapters/out/postgres/orderrepo"
	"pickup/internal/adapters/out/postgres/quotarepo"
	"pickup/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open, which makes a
// deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) QuotaRepository() ports.QuotaRepository {
	return quotarepo.NewGormQuotaRepository(uow.conn())
}

func (uow *GormUnitOfWork) InventoryLedger() ports.InventoryLedger {
	return catalogrepo.NewGormInventoryLedger(uow.conn())
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) MemberRepository() ports.MemberRepository {
	return memberrepo.NewGormMemberRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
