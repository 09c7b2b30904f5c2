package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should keep the requested lines in order", func(t *testing.T) {
		f := newOrderFixture()

		cmd := f.command(t, "25.00")

		require.NoError(t, cmd.Validate())
		assert.Equal(t, f.customerID, cmd.CustomerID())
		assert.Equal(t, f.restaurantID, cmd.RestaurantID())
		assert.Equal(t, "25.00", cmd.Price().String())
		assert.Equal(t, []kernel.ProductID{f.burger, f.fries}, cmd.ProductIDs())
		require.Len(t, cmd.Items(), 2)
		assert.Equal(t, 2, cmd.Items()[0].Quantity)
	})

	t.Run("should reject missing identifiers, address and items at once", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.CustomerID{}, kernel.RestaurantID{}, kernel.StreetAddress{}, kernel.ZeroMoney, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrStreetAddressIsNotConstructed)
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
		assert.Contains(t, err.Error(), "customer id")
		assert.Contains(t, err.Error(), "restaurant id")
	})

	t.Run("should reject an item without product", func(t *testing.T) {
		f := newOrderFixture()

		_, err := commands.NewCreateOrderCommand(f.customerID, f.restaurantID, newAddress(t), mustMoney(t, "1.00"),
			[]commands.CreateOrderItem{{Quantity: 1, Price: mustMoney(t, "1.00"), SubTotal: mustMoney(t, "1.00")}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("should not expose its items for mutation", func(t *testing.T) {
		cmd := newOrderFixture().command(t, "25.00")

		items := cmd.Items()
		items[0].Quantity = 99

		assert.Equal(t, 2, cmd.Items()[0].Quantity)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
