package catalogrepo

import (
	"context"

	"pickup/internal/adapters/out/postgres/storeerr"
	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddRestaurant stores a new restaurant.
func (r *GormCatalogRepository) AddRestaurant(ctx context.Context, restaurant *catalog.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(restaurant)
	return storeerr.Wrap("add restaurant", r.db.WithContext(ctx).Omit("Foods").Create(&dto).Error)
}

// AddFoodItem stores a new food item with its initial stock.
func (r *GormCatalogRepository) AddFoodItem(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := foodItemFromDomain(item)
	return storeerr.Wrap("add food item", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, storeerr.NotFound("get restaurant", "restaurant", id.String(), err)
	}

	return restaurantToDomain(dto)
}

func (r *GormCatalogRepository) GetFoodItem(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, storeerr.NotFound("get food item", "food item", id.String(), err)
	}

	return foodItemToDomain(dto)
}
