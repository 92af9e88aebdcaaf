package kafka

import (
	"time"

	"pickup/internal/core/domain/model/order"
)

const OrderResolvedEventType = "order.resolved"

type orderResolvedEvent struct {
	OrderID      string           `json:"order_id"`
	UserID       string           `json:"user_id"`
	RestaurantID string           `json:"restaurant_id"`
	OrderDate    string           `json:"order_date"`
	Status       string           `json:"status"`
	ResolvedAt   time.Time        `json:"resolved_at"`
	Total        string           `json:"total"`
	Lines        []orderEventLine `json:"lines"`
}

type orderEventLine struct {
	FoodItemID string `json:"food_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
}

func newOrderResolvedEvent(h *order.History) orderResolvedEvent {
	lines := make([]orderEventLine, 0, len(h.Lines()))
	for _, l := range h.Lines() {
		lines = append(lines, orderEventLine{
			FoodItemID: l.FoodItemID().String(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().StringFixed(2),
		})
	}

	return orderResolvedEvent{
		OrderID:      h.ID().String(),
		UserID:       h.UserID().String(),
		RestaurantID: h.RestaurantID().String(),
		OrderDate:    h.Date().String(),
		Status:       h.Status().String(),
		ResolvedAt:   h.ResolvedAt().UTC(),
		Total:        h.Total().StringFixed(2),
		Lines:        lines,
	}
}
