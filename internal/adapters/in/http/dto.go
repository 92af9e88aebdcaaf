package http

import (
	"time"

	"pickup/internal/core/application/usecases/queries"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	RestaurantID string `json:"restaurant_id"`
	FoodID       string `json:"food_id"`
	Quantity     int    `json:"quantity"`
}

type OrderCreated struct {
	ID string `json:"id"`
}

// StatusUpdate is the body of PATCH /api/v1/orders/:id/status.
type StatusUpdate struct {
	Status string `json:"status"`
}

type OrderResolved struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type OrderLine struct {
	FoodID    string `json:"food_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type ActiveOrder struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	OrderDate    string      `json:"order_date"`
	Status       string      `json:"status"`
	Lines        []OrderLine `json:"lines"`
}

type HistoryOrder struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	OrderDate    string      `json:"order_date"`
	Status       string      `json:"status"`
	ResolvedAt   time.Time   `json:"resolved_at"`
	Lines        []OrderLine `json:"lines"`
}

func orderLines(lines []queries.OrderLineResponse) []OrderLine {
	out := make([]OrderLine, len(lines))
	for i, l := range lines {
		out[i] = OrderLine{
			FoodID:    l.FoodItemID.String(),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
		}
	}
	return out
}
