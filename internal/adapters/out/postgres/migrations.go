package postgres

import (
	"pickup/internal/adapters/out/postgres/catalogrepo"
	"pickup/internal/adapters/out/postgres/memberrepo"
	"pickup/internal/adapters/out/postgres/orderrepo"
	"pickup/internal/adapters/out/postgres/quotarepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in dependency order.
func Models() []any {
	models := []any{
		&memberrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.FoodItemDTO{},
		&quotarepo.DailyOrderClaimDTO{},
	}
	return append(models, orderrepo.Models()...)
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Tables lists the table names of Models, for truncation in tests.
func Tables() []string {
	return []string{
		"order_history_lines",
		"order_histories",
		"order_lines",
		"orders",
		"daily_order_claims",
		"foods",
		"restaurants",
		"users",
	}
}
