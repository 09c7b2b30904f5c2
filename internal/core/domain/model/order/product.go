package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the snapshot of a menu product an order item refers to: its id and
// the price the customer was quoted.
type Product struct {
	id    kernel.ProductID
	price kernel.Money

	isConstructed bool
}

func NewProduct(id kernel.ProductID, price kernel.Money) (Product, error) {
	if err := id.Validate(); err != nil {
		return Product{}, err
	}

	return Product{
		id:            id,
		price:         price,
		isConstructed: true,
	}, nil
}

func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p Product) ID() kernel.ProductID {
	return p.id
}

func (p Product) Price() kernel.Money {
	return p.price
}
