package kafka_test

import (
	"context"
	"testing"

	consumer "ordering/internal/adapters/in/kafka"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestaurantApprovalResponseHandler_Handle(t *testing.T) {
	ctx := context.Background()

	setup := func() (*consumer.RestaurantApprovalResponseHandler, *MockApproveOrderHandler, *MockRejectOrderHandler) {
		approve := &MockApproveOrderHandler{}
		reject := &MockRejectOrderHandler{}
		return consumer.NewRestaurantApprovalResponseHandler(approve, reject), approve, reject
	}

	t.Run("should approve the order", func(t *testing.T) {
		handler, approve, reject := setup()
		trackingID := kernel.NewTrackingID()
		approve.On("Handle", ctx, mock.MatchedBy(func(cmd commands.ApproveOrderCommand) bool {
			return cmd.Validate() == nil && cmd.TrackingID() == trackingID
		})).Return(nil).Once()

		signal, err := handler.Handle(ctx, kafka.Message{Value: []byte(
			`{"trackingId":"` + trackingID.String() + `","orderApprovalStatus":"APPROVED"}`,
		)})

		require.NoError(t, err)
		assert.Equal(t, consumer.SignalRestaurantApproved, signal)
		approve.AssertExpectations(t)
		reject.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject the order with the restaurant's reasons", func(t *testing.T) {
		handler, approve, reject := setup()
		trackingID := kernel.NewTrackingID()
		reject.On("Handle", ctx, mock.MatchedBy(func(cmd commands.RejectOrderCommand) bool {
			return cmd.TrackingID() == trackingID &&
				assert.ObjectsAreEqual([]string{"kitchen closed"}, cmd.FailureMessages())
		})).Return(nil).Once()

		signal, err := handler.Handle(ctx, kafka.Message{Value: []byte(
			`{"trackingId":"` + trackingID.String() +
				`","orderApprovalStatus":"REJECTED","failureMessages":["kitchen closed"]}`,
		)})

		require.NoError(t, err)
		assert.Equal(t, consumer.SignalRestaurantRejected, signal)
		reject.AssertExpectations(t)
		approve.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should flag an unknown status as malformed", func(t *testing.T) {
		handler, approve, reject := setup()

		_, err := handler.Handle(ctx, kafka.Message{Value: []byte(
			`{"trackingId":"` + kernel.NewTrackingID().String() + `","orderApprovalStatus":"MAYBE"}`,
		)})

		require.ErrorIs(t, err, consumer.ErrMalformedMessage)
		approve.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		reject.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should flag invalid json as malformed", func(t *testing.T) {
		handler, _, _ := setup()

		_, err := handler.Handle(ctx, kafka.Message{Value: []byte(`not json`)})

		require.ErrorIs(t, err, consumer.ErrMalformedMessage)
	})
}
