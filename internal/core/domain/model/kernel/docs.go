// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: the identifier primitive wrapping github.com/google/uuid
//   - OrderID, TrackingID, CustomerID, RestaurantID, ProductID: typed identifiers
//     that cannot be assigned to one another
//   - Money: an exact decimal amount backed by github.com/shopspring/decimal
//   - StreetAddress: the delivery address of an order, compared by value
//
// All values are immutable and safe for concurrent use.
package kernel
