package ports

import (
	"context"

	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"
)

// CatalogRepository reads restaurants and their food items.
// Both lookups return errs.ObjectNotFoundError for unknown ids.
type CatalogRepository interface {
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)
	GetFoodItem(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error)
}
