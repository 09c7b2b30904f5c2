package order

import (
	"errors"
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is built without any item.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is the aggregate root of the ordering domain. It owns its items and is the
// only place where the order status can change.
//
// Order follows these invariants:
//   - Identifier, tracking identifier and status are assigned once, by InitializeOrder
//   - Total price must be greater than zero and equal to the sum of item subtotals
//   - Every item must pass OrderItem.IsPriceValid
//   - Status changes only along the transitions defined by Status
//
// Every operation validates first and mutates afterwards, so a returned error
// always means the order was left unchanged.
type Order struct {
	// id is the internal identifier, unset until InitializeOrder
	id kernel.OrderID

	// trackingID is the identifier exposed to clients and saga participants
	trackingID kernel.TrackingID

	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID

	deliveryAddress kernel.StreetAddress

	// price is the total quoted to the customer
	price kernel.Money

	items []*OrderItem

	status Status

	// failureMessages holds the reasons collected on cancellation paths
	failureMessages []string

	// version is the persisted revision, 0 for an order never stored
	version int

	isConstructed bool
}

// NewOrderParams carries everything a caller knows about an order before it
// enters the saga.
type NewOrderParams struct {
	CustomerID      kernel.CustomerID
	RestaurantID    kernel.RestaurantID
	DeliveryAddress kernel.StreetAddress
	Price           kernel.Money
	Items           []*OrderItem
}

// NewOrder creates an order that has not been initialized: it has no
// identifier, no tracking identifier and Unknown status.
//
// Pricing invariants are not checked here; call ValidateOrder for that.
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//	    CustomerID:      customerID,
//	    RestaurantID:    restaurantID,
//	    DeliveryAddress: address,
//	    Price:           total,
//	    Items:           items,
//	})
//
// The items must be unattached: an item that already belongs to an order, or
// that is listed twice, is rejected.
func NewOrder(params NewOrderParams) (*Order, error) {
	o, err := newOrder(params)
	if err = errors.Join(err, validateItemsUnattached(params.Items)); err != nil {
		return nil, err
	}
	return o, nil
}

func newOrder(params NewOrderParams) (*Order, error) {
	o := &Order{
		price:         params.Price,
		status:        Unknown,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(params.CustomerID),
		o.setRestaurantID(params.RestaurantID),
		o.setDeliveryAddress(params.DeliveryAddress),
		o.setItems(params.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order.
type RestoreOrderParams struct {
	ID              kernel.OrderID
	TrackingID      kernel.TrackingID
	CustomerID      kernel.CustomerID
	RestaurantID    kernel.RestaurantID
	DeliveryAddress kernel.StreetAddress
	Price           kernel.Money
	Items           []*OrderItem
	Status          Status
	FailureMessages []string
	Version         int
}

// RestoreOrder rebuilds an order from persistence. Every item must already belong
// to the order being restored.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := newOrder(NewOrderParams{
		CustomerID:      params.CustomerID,
		RestaurantID:    params.RestaurantID,
		DeliveryAddress: params.DeliveryAddress,
		Price:           params.Price,
		Items:           params.Items,
	})
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		params.ID.Validate(),
		params.TrackingID.Validate(),
		params.Status.Validate(),
		validateItemsOwnership(params.ID, params.Items),
	); err != nil {
		return nil, err
	}

	o.id = params.ID
	o.trackingID = params.TrackingID
	o.status = params.Status
	o.failureMessages = slices.Clone(params.FailureMessages)
	o.version = params.Version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.OrderID {
	return o.id
}

func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.RestaurantID {
	return o.restaurantID
}

func (o *Order) DeliveryAddress() kernel.StreetAddress {
	return o.deliveryAddress
}

func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the order lines in their original order.
func (o *Order) Items() []*OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns a copy of the collected cancellation reasons.
func (o *Order) FailureMessages() []string {
	return slices.Clone(o.failureMessages)
}

// Version returns the persisted revision used for optimistic locking.
func (o *Order) Version() int {
	return o.version
}

// InitializeOrder assigns the identifier and tracking identifier, sets the status
// to Pending and numbers the items 1..N in their input order.
//
// It fails with a domain rule violation when the order already has an
// identifier or a status, so an order can be initialized at most once.
func (o *Order) InitializeOrder() error {
	if !o.id.IsZero() || o.status != Unknown {
		return errs.NewDomainRuleViolationError("order is not in correct state for initialization")
	}

	o.id = kernel.NewOrderID()
	o.trackingID = kernel.NewTrackingID()
	o.status = Pending

	for i, item := range o.items {
		item.initialize(o.id, ItemID(i+1))
	}

	return nil
}

// ValidateOrder checks the pricing invariants without changing the order:
//   - total price is greater than zero
//   - every item passes IsPriceValid
//   - total price equals the sum of item subtotals
func (o *Order) ValidateOrder() error {
	if !o.price.IsGreaterThanZero() {
		return errs.NewDomainRuleViolationError("total price must be greater than zero")
	}

	itemsTotal := kernel.ZeroMoney
	for _, item := range o.items {
		if !item.IsPriceValid() {
			return errs.NewDomainRuleViolationError(fmt.Sprintf(
				"order item price %s is not valid for product %s",
				item.Price(), item.Product().ID(),
			))
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return errs.NewDomainRuleViolationError(fmt.Sprintf(
			"total price %s is not equal to order items total %s",
			o.price, itemsTotal,
		))
	}

	return nil
}

// Pay moves a Pending order to Paid.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve moves a Paid order to Approved.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// InitCancel moves a Paid order to Cancelling and records the reasons.
//
// Reasons are appended to the ones already collected; empty strings are skipped.
// A nil or empty list clears every collected reason.
func (o *Order) InitCancel(failureMessages []string) error {
	newStatus, err := o.status.InitCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updateFailureMessages(failureMessages)
	return nil
}

// Cancel moves a Pending or Cancelling order to Cancelled and records the
// reasons the same way InitCancel does.
func (o *Order) Cancel(failureMessages []string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updateFailureMessages(failureMessages)
	return nil
}

func (o *Order) updateFailureMessages(failureMessages []string) {
	if len(failureMessages) == 0 {
		o.failureMessages = nil
		return
	}

	for _, message := range failureMessages {
		if message != "" {
			o.failureMessages = append(o.failureMessages, message)
		}
	}
}

func (o *Order) setCustomerID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.StreetAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	seen := make(map[*OrderItem]struct{}, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"order item is invalid",
				fmt.Errorf("item at position %d is listed more than once", i),
			)
		}
		seen[item] = struct{}{}
	}

	o.items = slices.Clone(items)
	return nil
}

func validateItemsUnattached(items []*OrderItem) error {
	for i, item := range items {
		if item == nil {
			continue
		}
		if !item.OrderID().IsZero() || item.ID() != 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"order item is invalid",
				fmt.Errorf("item at position %d already belongs to order %s", i, item.OrderID()),
			)
		}
	}
	return nil
}

func validateItemsOwnership(id kernel.OrderID, items []*OrderItem) error {
	for _, item := range items {
		if item == nil {
			continue
		}
		if !item.OrderID().IsEqual(id) || item.ID() <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"order item is invalid",
				fmt.Errorf("item %d does not belong to order %s", item.ID(), id),
			)
		}
	}
	return nil
}
