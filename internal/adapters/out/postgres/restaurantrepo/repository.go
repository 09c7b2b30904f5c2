package restaurantrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// GetRestaurantInformation loads the restaurant with the requested products only.
func (r *GormRestaurantRepository) GetRestaurantInformation(
	ctx context.Context,
	id kernel.RestaurantID,
	productIDs []kernel.ProductID,
) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	rawIDs := make([]uuid.UUID, 0, len(productIDs))
	for _, productID := range productIDs {
		if err := productID.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, productID.UUID().Raw())
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).
		Preload("Products", "id IN ?", rawIDs).
		First(&dto, "id = ?", id.UUID().Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
