package queries

import (
	"context"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the user's resolved orders, most recently resolved first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.restaurant_id,
			h.order_date,
			h.status,
			h.resolved_at,
			l.food_item_id,
			l.quantity,
			l.unit_price
		FROM order_histories h
		JOIN order_history_lines l ON l.history_id = h.id
		WHERE h.user_id = ?
		ORDER BY h.resolved_at DESC, h.id, l.id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make([]GetOrderHistoryQueryResponse, 0)
	for rows.Next() {
		var (
			row        orderLineRow
			statusCode string
			resolvedAt time.Time
		)
		if err := rows.Scan(
			&row.orderID,
			&row.restaurantID,
			&row.orderDate,
			&statusCode,
			&resolvedAt,
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

		if n := len(histories); n > 0 && histories[n-1].ID.Bytes() == row.orderID {
			histories[n-1].Lines = append(histories[n-1].Lines, line)
			continue
		}

		orderID, restaurantID, err := row.ids()
		if err != nil {
			return nil, err
		}
		status, err := order.ParseTerminalStatus(statusCode)
		if err != nil {
			return nil, err
		}
		histories = append(histories, GetOrderHistoryQueryResponse{
			ID:           orderID,
			RestaurantID: restaurantID,
			Date:         kernel.LocalDateOf(row.orderDate),
			Status:       status,
			ResolvedAt:   resolvedAt,
			Lines:        []OrderLineResponse{line},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return histories, nil
}
