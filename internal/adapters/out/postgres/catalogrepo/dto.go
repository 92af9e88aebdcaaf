// Package catalogrepo persists restaurants and food items and implements the
// inventory ledger on top of the food stock column.
package catalogrepo

import (
	"pickup/internal/core/domain/model/catalog"
	"pickup/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO stores the pickup window as minutes since midnight.
type RestaurantDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name        string        `gorm:"type:varchar(255);not null"`
	OpenMinute  int           `gorm:"type:smallint;not null"`
	CloseMinute int           `gorm:"type:smallint;not null"`
	Foods       []FoodItemDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// FoodItemDTO keeps the live stock in Quantity, never negative.
type FoodItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity     int             `gorm:"type:int;not null;check:chk_foods_quantity_non_negative,quantity >= 0"`
}

func (FoodItemDTO) TableName() string {
	return "foods"
}

func restaurantFromDomain(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          r.ID().Bytes(),
		Name:        r.Name(),
		OpenMinute:  r.OpenTime().Minutes(),
		CloseMinute: r.CloseTime().Minutes(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	openTime, err := kernel.TimeOfDayFromMinutes(dto.OpenMinute)
	if err != nil {
		return nil, err
	}
	closeTime, err := kernel.TimeOfDayFromMinutes(dto.CloseMinute)
	if err != nil {
		return nil, err
	}
	return catalog.NewRestaurant(id, dto.Name, openTime, closeTime)
}

func foodItemFromDomain(f *catalog.FoodItem) FoodItemDTO {
	return FoodItemDTO{
		ID:           f.ID().Bytes(),
		RestaurantID: f.RestaurantID().Bytes(),
		Name:         f.Name(),
		Price:        f.Price(),
		Quantity:     f.Stock(),
	}
}

func foodItemToDomain(dto FoodItemDTO) (*catalog.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewFoodItem(id, restaurantID, dto.Name, dto.Price, dto.Quantity)
}
