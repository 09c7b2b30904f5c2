package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

type createOrderUoWFactory struct{ uow commands.CreateOrderUoW }

func (f createOrderUoWFactory) Create() commands.CreateOrderUoW { return f.uow }

type sagaUoWFactory struct{ uow commands.SagaUoW }

func (f sagaUoWFactory) Create() commands.SagaUoW { return f.uow }

type outboxUoWFactory struct{ uow commands.OutboxUoW }

func (f outboxUoWFactory) Create() commands.OutboxUoW { return f.uow }

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newAddress(t *testing.T) kernel.StreetAddress {
	t.Helper()
	address, err := kernel.NewStreetAddress(kernel.NewUUID(), "Main St 1", "1000AA", "Amsterdam")
	require.NoError(t, err)
	return address
}

// orderFixture describes a burger 10.00 x 2 and fries 5.00 x 1 order.
type orderFixture struct {
	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID
	burger       kernel.ProductID
	fries        kernel.ProductID
}

func newOrderFixture() orderFixture {
	return orderFixture{
		customerID:   kernel.NewCustomerID(),
		restaurantID: kernel.NewRestaurantID(),
		burger:       kernel.NewProductID(),
		fries:        kernel.NewProductID(),
	}
}

func (f orderFixture) command(t *testing.T, total string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(f.customerID, f.restaurantID, newAddress(t), mustMoney(t, total),
		[]commands.CreateOrderItem{
			{ProductID: f.burger, Quantity: 2, Price: mustMoney(t, "10.00"), SubTotal: mustMoney(t, "20.00")},
			{ProductID: f.fries, Quantity: 1, Price: mustMoney(t, "5.00"), SubTotal: mustMoney(t, "5.00")},
		})
	require.NoError(t, err)
	return cmd
}

func (f orderFixture) customer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(f.customerID, "jdoe", "John", "Doe")
	require.NoError(t, err)
	return c
}

func (f orderFixture) restaurant(t *testing.T, active bool) *restaurant.Restaurant {
	t.Helper()
	burger, err := restaurant.NewProduct(f.burger, "burger", mustMoney(t, "10.00"), true)
	require.NoError(t, err)
	fries, err := restaurant.NewProduct(f.fries, "fries", mustMoney(t, "5.00"), true)
	require.NoError(t, err)

	r, err := restaurant.NewRestaurant(f.restaurantID, active, []*restaurant.Product{burger, fries})
	require.NoError(t, err)
	return r
}

// persisted returns the order as a repository would load it, in the given status.
func (f orderFixture) persisted(t *testing.T, status order.Status, failureMessages ...string) *order.Order {
	t.Helper()
	id := kernel.NewOrderID()

	line := func(itemID order.ItemID, productID kernel.ProductID, qty int, price, subTotal string) *order.OrderItem {
		product, err := order.NewProduct(productID, mustMoney(t, price))
		require.NoError(t, err)
		item, err := order.RestoreOrderItem(id, itemID, product, qty, mustMoney(t, price), mustMoney(t, subTotal))
		require.NoError(t, err)
		return item
	}

	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		TrackingID:      kernel.NewTrackingID(),
		CustomerID:      f.customerID,
		RestaurantID:    f.restaurantID,
		DeliveryAddress: newAddress(t),
		Price:           mustMoney(t, "25.00"),
		Items: []*order.OrderItem{
			line(1, f.burger, 2, "10.00", "20.00"),
			line(2, f.fries, 1, "5.00", "5.00"),
		},
		Status:          status,
		FailureMessages: failureMessages,
		Version:         3,
	})
	require.NoError(t, err)
	return o
}
