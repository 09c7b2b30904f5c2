package commands_test

import (
	"encoding/json"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/outbox"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderMocks struct {
	uow         *MockUoW
	customers   *MockCustomerRepository
	restaurants *MockRestaurantRepository
	orders      *MockOrderRepository
	outbox      *MockOutboxRepository
}

func newCreateOrderMocks() createOrderMocks {
	return createOrderMocks{
		uow:         new(MockUoW),
		customers:   new(MockCustomerRepository),
		restaurants: new(MockRestaurantRepository),
		orders:      new(MockOrderRepository),
		outbox:      new(MockOutboxRepository),
	}
}

func (m createOrderMocks) handler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		createOrderUoWFactory{uow: m.uow},
		services.NewOrderDomainService(),
	)
}

func (m createOrderMocks) assertExpectations(t *testing.T) {
	m.uow.AssertExpectations(t)
	m.customers.AssertExpectations(t)
	m.restaurants.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.outbox.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should persist a pending order and its payment request", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderFixture()
		m := newCreateOrderMocks()

		var added *order.Order
		var message *outbox.Message
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("CustomerRepository").Return(m.customers).Once(),
			m.customers.On("Get", ctx, f.customerID).Return(f.customer(t), nil).Once(),
			m.uow.On("RestaurantRepository").Return(m.restaurants).Once(),
			m.restaurants.On("GetRestaurantInformation", ctx, f.restaurantID, []kernel.ProductID{f.burger, f.fries}).
				Return(f.restaurant(t, true), nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
				Return(nil).Once(),
			m.uow.On("OutboxRepository").Return(m.outbox).Once(),
			m.outbox.On("Add", ctx, mock.AnythingOfType("*outbox.Message")).
				Run(func(args mock.Arguments) { message = args.Get(1).(*outbox.Message) }).
				Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := m.handler()
		result, err := h.Handle(ctx, f.command(t, "25.00"))

		require.NoError(t, err)
		m.assertExpectations(t)

		assert.Equal(t, order.Pending, result.Status)
		require.NotNil(t, added)
		assert.Equal(t, result.TrackingID, added.TrackingID())
		assert.Equal(t, order.Pending, added.Status())
		assert.Equal(t, order.ItemID(2), added.Items()[1].ID())

		require.NotNil(t, message)
		assert.Equal(t, "order.created", message.Kind())
		assert.True(t, result.TrackingID.UUID().IsEqual(message.AggregateID()))

		var request commands.PaymentRequest
		require.NoError(t, json.Unmarshal(message.Payload(), &request))
		assert.Equal(t, commands.PaymentRequest{
			OrderID:            added.ID().String(),
			TrackingID:         added.TrackingID().String(),
			CustomerID:         f.customerID.String(),
			Price:              "25.00",
			PaymentOrderStatus: commands.PaymentOrderStatusPending,
			CreatedAt:          message.CreatedAt(),
		}, request)
	})

	t.Run("should stop when the customer is unknown", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderFixture()
		m := newCreateOrderMocks()

		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("CustomerRepository").Return(m.customers).Once(),
			m.customers.On("Get", ctx, f.customerID).
				Return(nil, errs.NewObjectNotFoundError("customer", f.customerID)).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := m.handler()
		_, err := h.Handle(ctx, f.command(t, "25.00"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})

	t.Run("should stop when the restaurant is unknown", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderFixture()
		m := newCreateOrderMocks()

		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("CustomerRepository").Return(m.customers).Once(),
			m.customers.On("Get", ctx, f.customerID).Return(f.customer(t), nil).Once(),
			m.uow.On("RestaurantRepository").Return(m.restaurants).Once(),
			m.restaurants.On("GetRestaurantInformation", ctx, f.restaurantID, mock.Anything).
				Return(nil, errs.NewObjectNotFoundError("restaurant", f.restaurantID)).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := m.handler()
		_, err := h.Handle(ctx, f.command(t, "25.00"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})

	t.Run("should persist nothing when totals do not match", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderFixture()
		m := newCreateOrderMocks()

		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("CustomerRepository").Return(m.customers).Once(),
			m.customers.On("Get", ctx, f.customerID).Return(f.customer(t), nil).Once(),
			m.uow.On("RestaurantRepository").Return(m.restaurants).Once(),
			m.restaurants.On("GetRestaurantInformation", ctx, f.restaurantID, mock.Anything).
				Return(f.restaurant(t, true), nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := m.handler()
		_, err := h.Handle(ctx, f.command(t, "20.00"))

		require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
		m.assertExpectations(t)
	})

	t.Run("should persist nothing for an inactive restaurant", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderFixture()
		m := newCreateOrderMocks()

		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("CustomerRepository").Return(m.customers).Once(),
			m.customers.On("Get", ctx, f.customerID).Return(f.customer(t), nil).Once(),
			m.uow.On("RestaurantRepository").Return(m.restaurants).Once(),
			m.restaurants.On("GetRestaurantInformation", ctx, f.restaurantID, mock.Anything).
				Return(f.restaurant(t, false), nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := m.handler()
		_, err := h.Handle(ctx, f.command(t, "25.00"))

		require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
		assert.Contains(t, err.Error(), "not active")
		m.assertExpectations(t)
	})

	t.Run("should not commit when the outbox write fails", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderFixture()
		m := newCreateOrderMocks()

		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("CustomerRepository").Return(m.customers).Once(),
			m.customers.On("Get", ctx, f.customerID).Return(f.customer(t), nil).Once(),
			m.uow.On("RestaurantRepository").Return(m.restaurants).Once(),
			m.restaurants.On("GetRestaurantInformation", ctx, f.restaurantID, mock.Anything).
				Return(f.restaurant(t, true), nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
			m.uow.On("OutboxRepository").Return(m.outbox).Once(),
			m.outbox.On("Add", ctx, mock.Anything).Return(errors.New("outbox error")).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := m.handler()
		_, err := h.Handle(ctx, f.command(t, "25.00"))

		require.EqualError(t, err, "outbox error")
		m.assertExpectations(t)
	})

	t.Run("should return the commit error", func(t *testing.T) {
		ctx := t.Context()
		f := newOrderFixture()
		m := newCreateOrderMocks()

		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("CustomerRepository").Return(m.customers).Once(),
			m.customers.On("Get", ctx, f.customerID).Return(f.customer(t), nil).Once(),
			m.uow.On("RestaurantRepository").Return(m.restaurants).Once(),
			m.restaurants.On("GetRestaurantInformation", ctx, f.restaurantID, mock.Anything).
				Return(f.restaurant(t, true), nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
			m.uow.On("OutboxRepository").Return(m.outbox).Once(),
			m.outbox.On("Add", ctx, mock.Anything).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := m.handler()
		_, err := h.Handle(ctx, f.command(t, "25.00"))

		require.EqualError(t, err, "commit error")
		m.assertExpectations(t)
	})

	t.Run("should return the begin error", func(t *testing.T) {
		ctx := t.Context()
		m := newCreateOrderMocks()
		m.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		h := m.handler()
		_, err := h.Handle(ctx, newOrderFixture().command(t, "25.00"))

		require.EqualError(t, err, "begin error")
		m.assertExpectations(t)
	})

	t.Run("should reject a command not built by its constructor", func(t *testing.T) {
		m := newCreateOrderMocks()

		h := m.handler()
		_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
		m.assertExpectations(t)
	})
}
