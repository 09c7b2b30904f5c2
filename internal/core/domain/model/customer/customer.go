// Package customer holds the customer read model. The ordering service only needs
// to know that a customer exists before accepting an order.
package customer

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

type Customer struct {
	id        kernel.CustomerID
	username  string
	firstName string
	lastName  string

	isConstructed bool
}

func NewCustomer(id kernel.CustomerID, username, firstName, lastName string) (*Customer, error) {
	var usernameErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if err := errors.Join(id.Validate(), usernameErr); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		username:      username,
		firstName:     firstName,
		lastName:      lastName,
		isConstructed: true,
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

func (c *Customer) Username() string {
	return c.username
}

func (c *Customer) FirstName() string {
	return c.firstName
}

func (c *Customer) LastName() string {
	return c.lastName
}
