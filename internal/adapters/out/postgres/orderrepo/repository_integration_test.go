package orderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "pickup/internal/adapters/out/postgres"
	"pickup/internal/adapters/out/postgres/catalogrepo"
	"pickup/internal/adapters/out/postgres/orderrepo"
	"pickup/internal/adapters/out/postgres/pgtest"
	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository

	restaurant *catalog.Restaurant
	date       kernel.LocalDate
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
	suite.date = kernel.LocalDateOf(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate(postgres_adapter.Tables()...))
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB)

	open, err := kernel.NewTimeOfDay(9, 0)
	suite.Require().NoError(err)
	closing, err := kernel.NewTimeOfDay(10, 0)
	suite.Require().NoError(err)
	suite.restaurant, err = catalog.NewRestaurant(kernel.NewUUID(), "Warung Sate", open, closing)
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormCatalogRepository(suite.pg.DB).AddRestaurant(context.Background(), suite.restaurant))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCreateOrAppend_CreatesNewOrder() {
	ctx := context.Background()
	candidate := suite.createTestOrder(kernel.NewUUID(), suite.date, 2)

	id, created, err := suite.repository.CreateOrAppend(ctx, candidate)

	suite.Require().NoError(err)
	suite.True(created)
	suite.True(id.IsEqual(candidate.ID()))
	suite.assertOrderCount(1)

	stored, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.True(stored.UserID().IsEqual(candidate.UserID()))
	suite.True(stored.Date().IsEqual(suite.date))
	suite.Require().Len(stored.Lines(), 1)
	suite.Equal(2, stored.Lines()[0].Quantity())
	suite.True(decimal.RequireFromString("12.50").Equal(stored.Lines()[0].UnitPrice()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCreateOrAppend_AppendsToActiveOrder() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	first := suite.createTestOrder(userID, suite.date, 1)
	second := suite.createTestOrder(userID, suite.date, 3)

	firstID, created, err := suite.repository.CreateOrAppend(ctx, first)
	suite.Require().NoError(err)
	suite.True(created)

	secondID, created, err := suite.repository.CreateOrAppend(ctx, second)
	suite.Require().NoError(err)
	suite.False(created)
	suite.True(secondID.IsEqual(firstID), "Line should be appended to the existing order")

	stored, err := suite.repository.Get(ctx, firstID)
	suite.Require().NoError(err)
	lines := stored.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal(1, lines[0].Quantity())
	suite.Equal(3, lines[1].Quantity())
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCreateOrAppend_OtherDayCreatesNewOrder() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	yesterday := kernel.LocalDateOf(suite.date.Midnight().AddDate(0, 0, -1))

	_, _, err := suite.repository.CreateOrAppend(ctx, suite.createTestOrder(userID, yesterday, 1))
	suite.Require().NoError(err)
	_, created, err := suite.repository.CreateOrAppend(ctx, suite.createTestOrder(userID, suite.date, 1))
	suite.Require().NoError(err)

	suite.True(created)
	suite.assertOrderCount(2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestResolve_MovesOrderToHistory() {
	ctx := context.Background()
	candidate := suite.createTestOrder(kernel.NewUUID(), suite.date, 2)
	id, _, err := suite.repository.CreateOrAppend(ctx, candidate)
	suite.Require().NoError(err)

	resolvedAt := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	history, err := candidate.Resolve(order.Succeeded, resolvedAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Resolve(ctx, history))

	suite.assertOrderCount(0)
	var lineCount int64
	suite.Require().NoError(suite.pg.DB.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Zero(lineCount, "Active lines should be removed with their order")

	stored, err := suite.repository.GetHistory(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Succeeded, stored.Status())
	suite.True(stored.ResolvedAt().Equal(resolvedAt))
	suite.True(stored.Date().IsEqual(suite.date))
	suite.Require().Len(stored.Lines(), 1)
	suite.True(decimal.RequireFromString("25.00").Equal(stored.Total()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestResolve_MissingOrderIsNotFound() {
	ctx := context.Background()
	candidate := suite.createTestOrder(kernel.NewUUID(), suite.date, 1)
	history, err := candidate.Resolve(order.Failed, time.Now())
	suite.Require().NoError(err)

	err = suite.pg.DB.Transaction(func(tx *gorm.DB) error {
		return orderrepo.NewGormOrderRepository(tx).Resolve(ctx, history)
	})

	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.GetHistory(ctx, candidate.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound, "History insert should roll back with the failed delete")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListActive_ReturnsOrdersWithLines() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	_, _, err := suite.repository.CreateOrAppend(ctx, suite.createTestOrder(userID, suite.date, 1))
	suite.Require().NoError(err)
	_, _, err = suite.repository.CreateOrAppend(ctx, suite.createTestOrder(userID, suite.date, 2))
	suite.Require().NoError(err)
	_, _, err = suite.repository.CreateOrAppend(ctx, suite.createTestOrder(kernel.NewUUID(), suite.date, 4))
	suite.Require().NoError(err)

	orders, err := suite.repository.ListActive(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	total := 0
	for _, o := range orders {
		suite.Equal(order.Active, o.Status())
		total += len(o.Lines())
	}
	suite.Equal(3, total)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListOverdue() {
	ctx := context.Background()
	yesterday := kernel.LocalDateOf(suite.date.Midnight().AddDate(0, 0, -1))

	stale, _, err := suite.repository.CreateOrAppend(ctx, suite.createTestOrder(kernel.NewUUID(), yesterday, 1))
	suite.Require().NoError(err)
	today, _, err := suite.repository.CreateOrAppend(ctx, suite.createTestOrder(kernel.NewUUID(), suite.date, 1))
	suite.Require().NoError(err)

	beforeClose, err := kernel.NewTimeOfDay(9, 59)
	suite.Require().NoError(err)
	ids, err := suite.repository.ListOverdue(ctx, suite.date, beforeClose)
	suite.Require().NoError(err)
	suite.Require().Len(ids, 1)
	suite.True(ids[0].IsEqual(stale))

	atClose, err := kernel.NewTimeOfDay(10, 0)
	suite.Require().NoError(err)
	ids, err = suite.repository.ListOverdue(ctx, suite.date, atClose)
	suite.Require().NoError(err)
	suite.Require().Len(ids, 2)
	suite.True(ids[0].IsEqual(stale))
	suite.True(ids[1].IsEqual(today))
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(userID kernel.UUID, date kernel.LocalDate, qty int) *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), qty, decimal.RequireFromString("12.50"))
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), userID, suite.restaurant.ID(), date, line)
	suite.Require().NoError(err)
	return o
}

// assertOrderCount verifies the number of active orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.pg.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
