package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type itemLine struct {
	price    string
	quantity int
	subTotal string
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, line itemLine) *order.OrderItem {
	t.Helper()
	product, err := order.NewProduct(kernel.NewProductID(), mustMoney(t, line.price))
	require.NoError(t, err)

	item, err := order.NewOrderItem(product, line.quantity, mustMoney(t, line.price), mustMoney(t, line.subTotal))
	require.NoError(t, err)
	return item
}

func newAddress(t *testing.T) kernel.StreetAddress {
	t.Helper()
	address, err := kernel.NewStreetAddress(kernel.NewUUID(), "Main St 1", "1000AA", "Amsterdam")
	require.NoError(t, err)
	return address
}

// newOrder builds an unattached order with the two items used throughout the
// saga scenarios: 10.00 x 2 and 5.00 x 1.
func newOrder(t *testing.T, total string) *order.Order {
	t.Helper()
	return newOrderWithItems(t, total,
		itemLine{price: "10.00", quantity: 2, subTotal: "20.00"},
		itemLine{price: "5.00", quantity: 1, subTotal: "5.00"},
	)
}

func newOrderWithItems(t *testing.T, total string, lines ...itemLine) *order.Order {
	t.Helper()
	items := make([]*order.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, newItem(t, line))
	}

	o, err := order.NewOrder(order.NewOrderParams{
		CustomerID:      kernel.NewCustomerID(),
		RestaurantID:    kernel.NewRestaurantID(),
		DeliveryAddress: newAddress(t),
		Price:           mustMoney(t, total),
		Items:           items,
	})
	require.NoError(t, err)
	return o
}

func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newOrder(t, "25.00")
	require.NoError(t, o.InitializeOrder())

	switch status {
	case order.Pending:
	case order.Paid:
		require.NoError(t, o.Pay())
	case order.Approved:
		require.NoError(t, o.Pay())
		require.NoError(t, o.Approve())
	case order.Cancelling:
		require.NoError(t, o.Pay())
		require.NoError(t, o.InitCancel([]string{"restaurant closed"}))
	case order.Cancelled:
		require.NoError(t, o.Cancel([]string{"payment declined"}))
	default:
		t.Fatalf("unsupported status %s", status)
	}
	return o
}
