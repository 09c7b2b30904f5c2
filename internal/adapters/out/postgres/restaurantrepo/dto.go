// Package restaurantrepo reads the restaurant snapshot the ordering service
// keeps of the restaurant service: whether a restaurant is active and what its
// products cost.
package restaurantrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name     string       `gorm:"type:varchar(255);not null"`
	Active   bool         `gorm:"not null"`
	Products []ProductDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO is a product as offered by one restaurant.
type ProductDTO struct {
	RestaurantID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available    bool            `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "restaurant_products"
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	products := make([]*restaurant.Product, 0, len(dto.Products))
	for _, p := range dto.Products {
		productID, idErr := kernel.UUIDFromRaw(p.ID)
		if idErr != nil {
			return nil, idErr
		}

		product, productErr := restaurant.NewProduct(
			kernel.ProductIDFrom(productID), p.Name, kernel.NewMoney(p.Price), p.Available,
		)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return restaurant.NewRestaurant(kernel.RestaurantIDFrom(id), dto.Active, products)
}
