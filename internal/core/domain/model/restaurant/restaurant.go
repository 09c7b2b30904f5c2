// Package restaurant holds the read-model snapshot of a restaurant and its menu
// that the ordering service consults while validating a new order. The service
// never changes or stores this data on its own.
package restaurant

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	ErrProductIsNotConstructed    = errors.New("Product must be created via NewProduct constructor")
)

// Restaurant is the snapshot of a restaurant: whether it accepts orders and the
// current state of the products a customer asked for.
type Restaurant struct {
	id       kernel.RestaurantID
	active   bool
	products []*Product

	isConstructed bool
}

func NewRestaurant(id kernel.RestaurantID, active bool, products []*Product) (*Restaurant, error) {
	r := &Restaurant{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(r.setID(id), r.setProducts(products)); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.RestaurantID {
	return r.id
}

func (r *Restaurant) IsActive() bool {
	return r.active
}

func (r *Restaurant) Products() []*Product {
	products := make([]*Product, len(r.products))
	copy(products, r.products)
	return products
}

// FindProduct returns the product with the given id, if the snapshot has it.
func (r *Restaurant) FindProduct(id kernel.ProductID) (*Product, bool) {
	for _, p := range r.products {
		if p.id.IsEqual(id) {
			return p, true
		}
	}
	return nil, false
}

func (r *Restaurant) setID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setProducts(products []*Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.id.String()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"products are invalid",
				fmt.Errorf("product %s is listed twice", p.id),
			)
		}
		seen[p.id.String()] = struct{}{}
	}
	r.products = products
	return nil
}

// Product is a menu entry as currently offered by the restaurant.
type Product struct {
	id        kernel.ProductID
	name      string
	price     kernel.Money
	available bool

	isConstructed bool
}

func NewProduct(id kernel.ProductID, name string, price kernel.Money, available bool) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		available:     available,
		isConstructed: true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ProductID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) IsAvailable() bool {
	return p.available
}
