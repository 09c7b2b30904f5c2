package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// ItemID numbers the items of one order starting at 1. It is unique only
// together with the owning order's id.
type ItemID int

// OrderItem is one line of an order. It is owned by exactly one Order and gets
// its order id and item id when that order is initialized.
type OrderItem struct {
	orderID  kernel.OrderID
	id       ItemID
	product  Product
	quantity int
	price    kernel.Money
	subTotal kernel.Money

	isConstructed bool
}

// NewOrderItem creates an unattached item. Price consistency is not checked here;
// it is checked by IsPriceValid when the owning order is validated.
func NewOrderItem(product Product, quantity int, price, subTotal kernel.Money) (*OrderItem, error) {
	item := &OrderItem{
		price:         price,
		subTotal:      subTotal,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProduct(product),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem rebuilds a persisted item that already belongs to an order.
func RestoreOrderItem(
	orderID kernel.OrderID,
	id ItemID,
	product Product,
	quantity int,
	price, subTotal kernel.Money,
) (*OrderItem, error) {
	item, err := NewOrderItem(product, quantity, price, subTotal)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(orderID.Validate(), validateItemID(id)); err != nil {
		return nil, err
	}

	item.orderID = orderID
	item.id = id
	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// IsEqual compares items by (order id, item id).
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.orderID.IsEqual(other.orderID) && i.id == other.id
}

// IsPriceValid reports whether the price is positive, matches the product
// snapshot, and multiplied by the quantity gives the subtotal.
func (i *OrderItem) IsPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.IsEqual(i.product.Price()) &&
		i.price.Multiply(i.quantity).IsEqual(i.subTotal)
}

func (i *OrderItem) OrderID() kernel.OrderID {
	return i.orderID
}

func (i *OrderItem) ID() ItemID {
	return i.id
}

func (i *OrderItem) Product() Product {
	return i.product
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) Price() kernel.Money {
	return i.price
}

func (i *OrderItem) SubTotal() kernel.Money {
	return i.subTotal
}

// initialize attaches the item to its order. Only Order.InitializeOrder calls it.
func (i *OrderItem) initialize(orderID kernel.OrderID, id ItemID) {
	i.orderID = orderID
	i.id = id
}

func (i *OrderItem) setProduct(product Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	i.product = product
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func validateItemID(id ItemID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
