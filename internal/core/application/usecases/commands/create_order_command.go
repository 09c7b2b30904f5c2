package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderItem is one requested line as quoted to the customer.
type CreateOrderItem struct {
	ProductID kernel.ProductID
	Quantity  int
	Price     kernel.Money
	SubTotal  kernel.Money
}

// CreateOrderCommand represents a customer placing an order with a restaurant.
// Prices are the ones the customer was shown; the handler checks them against
// the current restaurant snapshot.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID, address, total, []CreateOrderItem{
//	    {ProductID: burgerID, Quantity: 2, Price: tenEuro, SubTotal: twentyEuro},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.CustomerID
	restaurantID    kernel.RestaurantID
	deliveryAddress kernel.StreetAddress
	price           kernel.Money
	items           []CreateOrderItem

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	deliveryAddress kernel.StreetAddress,
	price kernel.Money,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c CreateOrderCommand) DeliveryAddress() kernel.StreetAddress {
	return c.deliveryAddress
}

func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

func (c CreateOrderCommand) Items() []CreateOrderItem {
	items := make([]CreateOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// ProductIDs lists the requested products in item order.
func (c CreateOrderCommand) ProductIDs() []kernel.ProductID {
	ids := make([]kernel.ProductID, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

func (c *CreateOrderCommand) setCustomerID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address kernel.StreetAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	c.items = make([]CreateOrderItem, len(items))
	copy(c.items, items)
	return nil
}
