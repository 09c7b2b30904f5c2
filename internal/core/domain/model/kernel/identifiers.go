package kernel

import "ordering/internal/pkg/errs"

// kind tags an ID with the entity it identifies so that, for example, a
// CustomerID can never be passed where an OrderID is expected.
type kind interface {
	name() string
}

type (
	orderKind      struct{}
	trackingKind   struct{}
	customerKind   struct{}
	restaurantKind struct{}
	productKind    struct{}
)

func (orderKind) name() string { return "order id" }
func (trackingKind) name() string { return "tracking id" }
func (customerKind) name() string { return "customer id" }
func (restaurantKind) name() string { return "restaurant id" }
func (productKind) name() string { return "product id" }

// ID is a strongly typed identifier backed by a UUID.
type ID[K kind] struct {
	value UUID
}

type (
	// OrderID is the internal identifier of an order aggregate.
	OrderID = ID[orderKind]
	// TrackingID is the externally visible correlation id of an order.
	TrackingID = ID[trackingKind]
	// CustomerID identifies the customer who placed an order.
	CustomerID = ID[customerKind]
	// RestaurantID identifies the restaurant an order is placed with.
	RestaurantID = ID[restaurantKind]
	// ProductID identifies a product on a restaurant's menu.
	ProductID = ID[productKind]
)

func NewOrderID() OrderID {
	return OrderID{value: NewUUID()}
}

func NewTrackingID() TrackingID {
	return TrackingID{value: NewUUID()}
}

func NewCustomerID() CustomerID {
	return CustomerID{value: NewUUID()}
}

func NewRestaurantID() RestaurantID {
	return RestaurantID{value: NewUUID()}
}

func NewProductID() ProductID {
	return ProductID{value: NewUUID()}
}

func OrderIDFrom(u UUID) OrderID {
	return OrderID{value: u}
}

func TrackingIDFrom(u UUID) TrackingID {
	return TrackingID{value: u}
}

func CustomerIDFrom(u UUID) CustomerID {
	return CustomerID{value: u}
}

func RestaurantIDFrom(u UUID) RestaurantID {
	return RestaurantID{value: u}
}

func ProductIDFrom(u UUID) ProductID {
	return ProductID{value: u}
}

// ParseTrackingID parses a tracking id received from a client or a message.
func ParseTrackingID(s string) (TrackingID, error) {
	u, err := UUIDFromString(s)
	if err != nil {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("tracking id", err)
	}
	return TrackingIDFrom(u), nil
}

func (id ID[K]) UUID() UUID {
	return id.value
}

func (id ID[K]) String() string {
	return id.value.String()
}

// IsZero reports whether the identifier has not been assigned yet.
func (id ID[K]) IsZero() bool {
	return id.value.Validate() != nil
}

func (id ID[K]) IsEqual(other ID[K]) bool {
	return id.value.IsEqual(other.value)
}

func (id ID[K]) Validate() error {
	if err := id.value.Validate(); err != nil {
		var k K
		return errs.NewValueIsRequiredErrorWithCause(k.name(), err)
	}
	return nil
}
