package queries

import (
	"context"

	"pickup/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads active orders straight from orders and order_lines.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the user's active orders, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.restaurant_id,
			o.order_date,
			l.food_item_id,
			l.quantity,
			l.unit_price
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE o.user_id = ?
		ORDER BY o.order_date, o.created_at, o.id, l.id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var row orderLineRow
		if err := rows.Scan(
			&row.orderID,
			&row.restaurantID,
			&row.orderDate,
			&row.foodItemID,
			&row.quantity,
			&row.unitPrice,
		); err != nil {
			return nil, err
		}

		line, err := row.line()
		if err != nil {
			return nil, err
		}

		if n := len(orders); n > 0 && orders[n-1].ID.Bytes() == row.orderID {
			orders[n-1].Lines = append(orders[n-1].Lines, line)
			continue
		}

		orderID, restaurantID, err := row.ids()
		if err != nil {
			return nil, err
		}
		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:           orderID,
			RestaurantID: restaurantID,
			Date:         kernel.LocalDateOf(row.orderDate),
			Lines:        []OrderLineResponse{line},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
