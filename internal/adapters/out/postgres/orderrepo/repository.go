package orderrepo

import (
	"context"
	"errors"

	"pickup/internal/adapters/out/postgres/storeerr"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxAppendAttempts bounds how often CreateOrAppend retries when the active
// order it wanted to append to was resolved between the insert and the lock.
const maxAppendAttempts = 3

var errActiveOrderChurn = errors.New("active order kept disappearing while appending")

var activeKeyColumns = []clause.Column{
	{Name: "user_id"},
	{Name: "restaurant_id"},
	{Name: "order_date"},
}

// GormOrderRepository implements ports.OrderRepository using GORM.
// Row locks taken by Get and CreateOrAppend only last as long as the
// surrounding transaction, so both are meant to run inside a unit of work.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateOrAppend inserts the candidate header with ON CONFLICT DO NOTHING on
// the active key. When another active order holds the key, that order is
// locked and receives the candidate's lines instead.
func (r *GormOrderRepository) CreateOrAppend(ctx context.Context, candidate *order.Order) (kernel.UUID, bool, error) {
	if err := candidate.Validate(); err != nil {
		return kernel.UUID{}, false, err
	}

	db := r.db.WithContext(ctx)
	header := orderFromDomain(candidate)

	for range maxAppendAttempts {
		result := db.Omit(clause.Associations).
			Clauses(clause.OnConflict{Columns: activeKeyColumns, DoNothing: true}).
			Create(&header)
		if result.Error != nil {
			return kernel.UUID{}, false, storeerr.Wrap("create order", result.Error)
		}

		orderID, created := header.ID, true
		if result.RowsAffected == 0 {
			var existing OrderDTO
			err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("id").
				Where("user_id = ? AND restaurant_id = ? AND order_date = ?",
					header.UserID, header.RestaurantID, header.OrderDate).
				Take(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return kernel.UUID{}, false, storeerr.Wrap("lock active order", err)
			}
			orderID, created = existing.ID, false
		}

		lines := linesFromDomain(orderID, candidate.Lines())
		if err := db.Create(&lines).Error; err != nil {
			return kernel.UUID{}, false, storeerr.Wrap("add order lines", err)
		}

		id, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return kernel.UUID{}, false, err
		}
		return id, created, nil
	}

	return kernel.UUID{}, false, errs.NewStoreUnavailableError("create or append order", errActiveOrderChurn)
}

// Get loads the active order and locks its row FOR UPDATE.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderDTO
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, storeerr.NotFound("get order", "order", id.String(), err)
	}

	lines, err := r.findLines(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return orderToDomain(dto, lines)
}

// Resolve writes the history record with its lines and deletes the active
// order; the active lines go with it through the cascading foreign key.
func (r *GormOrderRepository) Resolve(ctx context.Context, history *order.History) error {
	if err := history.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	dto := historyFromDomain(history)
	if err := db.Create(&dto).Error; err != nil {
		return storeerr.Wrap("add order history", err)
	}

	result := db.Delete(&OrderDTO{}, "id = ?", dto.ID)
	if result.Error != nil {
		return storeerr.Wrap("delete active order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", history.ID().String())
	}

	return nil
}

func (r *GormOrderRepository) ListActive(ctx context.Context) ([]*order.Order, error) {
	db := r.db.WithContext(ctx)

	var dtos []OrderDTO
	if err := db.Order("order_date, created_at, id").Find(&dtos).Error; err != nil {
		return nil, storeerr.Wrap("list active orders", err)
	}
	if len(dtos) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	var lineDTOs []OrderLineDTO
	if err := db.Where("order_id IN ?", ids).Order("id").Find(&lineDTOs).Error; err != nil {
		return nil, storeerr.Wrap("list active order lines", err)
	}

	byOrder := make(map[uuid.UUID][]OrderLineDTO, len(dtos))
	for _, l := range lineDTOs {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto, byOrder[dto.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) ListOverdue(
	ctx context.Context,
	today kernel.LocalDate,
	now kernel.TimeOfDay,
) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Where("orders.order_date < ? OR (orders.order_date = ? AND restaurants.close_minute <= ?)",
			today.Midnight(), today.Midnight(), now.Minutes()).
		Order("orders.order_date, orders.created_at").
		Pluck("orders.id", &raw).Error
	if err != nil {
		return nil, storeerr.Wrap("list overdue orders", err)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, orderID)
	}
	return ids, nil
}

// GetHistory loads a resolved order.
func (r *GormOrderRepository) GetHistory(ctx context.Context, id kernel.UUID) (*order.History, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderHistoryDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Take(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, storeerr.NotFound("get order history", "order history", id.String(), err)
	}

	return historyToDomain(dto)
}

func (r *GormOrderRepository) findLines(ctx context.Context, orderID uuid.UUID) ([]OrderLineDTO, error) {
	var lines []OrderLineDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&lines).Error; err != nil {
		return nil, storeerr.Wrap("get order lines", err)
	}
	return lines, nil
}
