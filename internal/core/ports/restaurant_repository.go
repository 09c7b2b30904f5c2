package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantRepository reads the local restaurant snapshot.
type RestaurantRepository interface {
	// GetRestaurantInformation returns the restaurant with only the requested
	// products loaded. Products the restaurant does not offer are simply absent
	// from the result. Returns errs.ObjectNotFoundError for an unknown restaurant.
	GetRestaurantInformation(
		ctx context.Context,
		id kernel.RestaurantID,
		productIDs []kernel.ProductID,
	) (*restaurant.Restaurant, error)
}
