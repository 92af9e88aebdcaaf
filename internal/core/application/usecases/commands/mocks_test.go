package commands_test

import (
	"context"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/member"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) CreateOrAppend(ctx context.Context, candidate *order.Order) (kernel.UUID, bool, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Resolve(ctx context.Context, history *order.History) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockOrderRepository) ListActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListOverdue(
	ctx context.Context, today kernel.LocalDate, now kernel.TimeOfDay,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, today, now)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockQuotaRepository struct{ mock.Mock }

func (m *MockQuotaRepository) CountForDay(ctx context.Context, userID kernel.UUID, date kernel.LocalDate) (int, error) {
	args := m.Called(ctx, userID, date)
	return args.Int(0), args.Error(1)
}

func (m *MockQuotaRepository) Claim(ctx context.Context, userID kernel.UUID, date kernel.LocalDate, orderID kernel.UUID) error {
	args := m.Called(ctx, userID, date, orderID)
	return args.Error(0)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) TryReserve(ctx context.Context, itemID kernel.UUID, quantity int) (catalog.Reservation, error) {
	args := m.Called(ctx, itemID, quantity)
	return args.Get(0).(catalog.Reservation), args.Error(1)
}

func (m *MockInventoryLedger) Release(ctx context.Context, itemID kernel.UUID, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*catalog.Restaurant)
	return r, args.Error(1)
}

func (m *MockCatalogRepository) GetFoodItem(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*catalog.FoodItem)
	return f, args.Error(1)
}

type MockMemberRepository struct{ mock.Mock }

func (m *MockMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	mem, _ := args.Get(0).(*member.Member)
	return mem, args.Error(1)
}

// MockUoW serves every narrowed unit of work of the commands package.
type MockUoW struct {
	mock.Mock

	orders  *MockOrderRepository
	quotas  *MockQuotaRepository
	ledger  *MockInventoryLedger
	catalog *MockCatalogRepository
	members *MockMemberRepository
}

func NewMockUoW() *MockUoW {
	return &MockUoW{
		orders:  new(MockOrderRepository),
		quotas:  new(MockQuotaRepository),
		ledger:  new(MockInventoryLedger),
		catalog: new(MockCatalogRepository),
		members: new(MockMemberRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}
func (m *MockUoW) QuotaRepository() ports.QuotaRepository {
	return m.quotas
}
func (m *MockUoW) InventoryLedger() ports.InventoryLedger {
	return m.ledger
}
func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.catalog
}
func (m *MockUoW) MemberRepository() ports.MemberRepository {
	return m.members
}

func (m *MockUoW) AssertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.quotas.AssertExpectations(t)
	m.ledger.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
	m.members.AssertExpectations(t)
}

type placeOrderUoWFactory struct{ uow *MockUoW }

func (f placeOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f.uow
}

type resolveOrderUoWFactory struct{ uow *MockUoW }

func (f resolveOrderUoWFactory) Create() commands.ResolveOrderUoW {
	return f.uow
}

type orderCatalogUoWFactory struct{ uow *MockUoW }

func (f orderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	return f.uow
}

type MockExpiryScheduler struct{ mock.Mock }

func (m *MockExpiryScheduler) ScheduleExpiry(orderID kernel.UUID, deadline time.Time) {
	m.Called(orderID, deadline)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderResolved(ctx context.Context, history *order.History) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

type MockResolver struct{ mock.Mock }

func (m *MockResolver) Handle(ctx context.Context, command commands.ResolveOrderCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Location() *time.Location {
	return c.now.Location()
}
