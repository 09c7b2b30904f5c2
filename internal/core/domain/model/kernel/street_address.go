package kernel

import (
	"errors"

	"ordering/internal/pkg/errs"
)

var ErrStreetAddressIsNotConstructed = errors.New("street address must be created via NewStreetAddress")

// StreetAddress is the delivery address of an order. Two addresses are equal when
// all of their fields are equal, including the id.
type StreetAddress struct {
	id         UUID
	street     string
	postalCode string
	city       string

	isConstructed bool
}

// NewStreetAddress validates and builds an address. All validation errors are
// reported together.
func NewStreetAddress(id UUID, street, postalCode, city string) (StreetAddress, error) {
	address := StreetAddress{isConstructed: true}

	if err := errors.Join(
		address.setID(id),
		address.setStreet(street),
		address.setPostalCode(postalCode),
		address.setCity(city),
	); err != nil {
		return StreetAddress{}, err
	}

	return address, nil
}

func (a StreetAddress) Validate() error {
	if !a.isConstructed {
		return ErrStreetAddressIsNotConstructed
	}
	return nil
}

func (a StreetAddress) ID() UUID {
	return a.id
}

func (a StreetAddress) Street() string {
	return a.street
}

func (a StreetAddress) PostalCode() string {
	return a.postalCode
}

func (a StreetAddress) City() string {
	return a.city
}

// IsEqual returns an error when either address was not built by NewStreetAddress.
func (a StreetAddress) IsEqual(other StreetAddress) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a.id.IsEqual(other.id) &&
		a.street == other.street &&
		a.postalCode == other.postalCode &&
		a.city == other.city, nil
}

func (a *StreetAddress) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *StreetAddress) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *StreetAddress) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}

func (a *StreetAddress) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
