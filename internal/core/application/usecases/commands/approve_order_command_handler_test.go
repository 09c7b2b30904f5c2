package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveOrderCommandHandler_Handle(t *testing.T) {
	newHandler := func(uow *MockUoW) commands.ApproveOrderCommandHandler {
		return commands.NewApproveOrderCommandHandler(sagaUoWFactory{uow: uow}, services.NewOrderDomainService())
	}

	t.Run("should approve a paid order", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderFixture().persisted(t, order.Paid)
		cmd, err := commands.NewApproveOrderCommand(o.TrackingID())
		require.NoError(t, err)

		uow, orders := new(MockUoW), new(MockOrderRepository)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetByTrackingID", ctx, o.TrackingID()).Return(o, nil).Once(),
			orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := newHandler(uow)
		require.NoError(t, h.Handle(ctx, cmd))

		uow.AssertExpectations(t)
		orders.AssertExpectations(t)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should not approve an unpaid order", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderFixture().persisted(t, order.Pending)
		cmd, err := commands.NewApproveOrderCommand(o.TrackingID())
		require.NoError(t, err)

		uow, orders := new(MockUoW), new(MockOrderRepository)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetByTrackingID", ctx, o.TrackingID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := newHandler(uow)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
		assert.Equal(t, order.Pending, o.Status())
		uow.AssertExpectations(t)
	})

	t.Run("should return the begin error", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderFixture().persisted(t, order.Paid)
		cmd, err := commands.NewApproveOrderCommand(o.TrackingID())
		require.NoError(t, err)

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		h := newHandler(uow)
		require.EqualError(t, h.Handle(ctx, cmd), "begin error")
		uow.AssertExpectations(t)
	})

	t.Run("should reject a command not built by its constructor", func(t *testing.T) {
		h := newHandler(new(MockUoW))

		require.ErrorIs(t, h.Handle(t.Context(), commands.ApproveOrderCommand{}),
			commands.ErrApproveOrderCommandIsNotConstructed)
	})
}
