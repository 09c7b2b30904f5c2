// Package orderrepo persists the order aggregate in the orders and order_items
// tables and maps it to and from the domain model.
package orderrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Version backs optimistic locking.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null"`
	Address         AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          int             `gorm:"type:smallint;not null"`
	FailureMessages pq.StringArray  `gorm:"type:text[]"`
	Version         int             `gorm:"not null;default:0"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is embedded in the orders row; an address belongs to exactly one order.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid"`
	Street     string    `gorm:"type:varchar(255);not null"`
	PostalCode string    `gorm:"type:varchar(32);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
}

// OrderItemDTO is keyed by (order_id, id); item ids are 1..N within an order.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ID        int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SubTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	address := o.DeliveryAddress()
	items := o.Items()

	dto := OrderDTO{
		ID:           o.ID().UUID().Raw(),
		TrackingID:   o.TrackingID().UUID().Raw(),
		CustomerID:   o.CustomerID().UUID().Raw(),
		RestaurantID: o.RestaurantID().UUID().Raw(),
		Address: AddressDTO{
			ID:         address.ID().Raw(),
			Street:     address.Street(),
			PostalCode: address.PostalCode(),
			City:       address.City(),
		},
		Price:           o.Price().Amount(),
		Status:          int(o.Status()),
		FailureMessages: pq.StringArray(o.FailureMessages()),
		Version:         o.Version(),
		Items:           make([]OrderItemDTO, 0, len(items)),
	}

	for _, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:   dto.ID,
			ID:        int(item.ID()),
			ProductID: item.Product().ID().UUID().Raw(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Amount(),
			SubTotal:  item.SubTotal().Amount(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	trackingID, err := kernel.UUIDFromRaw(dto.TrackingID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromRaw(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromRaw(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromRaw(dto.Address.ID)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewStreetAddress(addressID, dto.Address.Street, dto.Address.PostalCode, dto.Address.City)
	if err != nil {
		return nil, err
	}

	orderID := kernel.OrderIDFrom(id)
	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(orderID, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var failureMessages []string
	if len(dto.FailureMessages) > 0 {
		failureMessages = []string(dto.FailureMessages)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              orderID,
		TrackingID:      kernel.TrackingIDFrom(trackingID),
		CustomerID:      kernel.CustomerIDFrom(customerID),
		RestaurantID:    kernel.RestaurantIDFrom(restaurantID),
		DeliveryAddress: address,
		Price:           kernel.NewMoney(dto.Price),
		Items:           items,
		Status:          order.Status(dto.Status),
		FailureMessages: failureMessages,
		Version:         dto.Version,
	})
}

func itemToDomain(orderID kernel.OrderID, dto OrderItemDTO) (*order.OrderItem, error) {
	productID, err := kernel.UUIDFromRaw(dto.ProductID)
	if err != nil {
		return nil, err
	}

	price := kernel.NewMoney(dto.Price)
	product, err := order.NewProduct(kernel.ProductIDFrom(productID), price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(orderID, order.ItemID(dto.ID), product, dto.Quantity, price, kernel.NewMoney(dto.SubTotal))
}
