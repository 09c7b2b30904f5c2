package kafka_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	consumer "ordering/internal/adapters/in/kafka"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConsumer(reader consumer.MessageReader, handler consumer.MessageHandler, m *metrics.Metrics) *consumer.Consumer {
	return consumer.NewConsumer("test_consumer", reader, handler,
		slog.New(slog.NewTextHandler(io.Discard, nil)), m,
		consumer.WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }),
		consumer.WithFetchDelay(0),
	)
}

func outcome(m *metrics.Metrics, signal, result string) float64 {
	return testutil.ToFloat64(m.SagaSignals.WithLabelValues(signal, result))
}

func TestConsumer_Process(t *testing.T) {
	msg := kafka.Message{Key: []byte("key"), Value: []byte(`{}`), Offset: 7}

	t.Run("should accept an applied message", func(t *testing.T) {
		handler := &MockMessageHandler{}
		m := metrics.New("test")
		handler.On("Handle", mock.Anything, msg).Return("payment.completed", nil).Once()

		ok := newConsumer(&MockReader{}, handler, m).Process(context.Background(), msg)

		assert.True(t, ok)
		handler.AssertExpectations(t)
		assert.InDelta(t, 1, outcome(m, "payment.completed", metrics.OutcomeApplied), 0)
	})

	skipped := map[string]error{
		"illegal transition": errs.NewDomainRuleViolationError("order is not in the correct state"),
		"unknown order":      errs.NewObjectNotFoundError("order tracking id", "x"),
	}
	for name, err := range skipped {
		t.Run("should accept without retry on "+name, func(t *testing.T) {
			handler := &MockMessageHandler{}
			m := metrics.New("test")
			handler.On("Handle", mock.Anything, msg).Return("restaurant.approved", err).Once()

			ok := newConsumer(&MockReader{}, handler, m).Process(context.Background(), msg)

			assert.True(t, ok)
			handler.AssertNumberOfCalls(t, "Handle", 1)
			assert.InDelta(t, 1, outcome(m, "restaurant.approved", metrics.OutcomeSkipped), 0)
		})
	}

	t.Run("should accept a malformed message without retry", func(t *testing.T) {
		handler := &MockMessageHandler{}
		m := metrics.New("test")
		handler.On("Handle", mock.Anything, msg).Return("unknown", consumer.ErrMalformedMessage).Once()

		ok := newConsumer(&MockReader{}, handler, m).Process(context.Background(), msg)

		assert.True(t, ok)
		handler.AssertNumberOfCalls(t, "Handle", 1)
		assert.InDelta(t, 1, outcome(m, "unknown", metrics.OutcomeMalformed), 0)
	})

	t.Run("should retry transient failures until the message applies", func(t *testing.T) {
		handler := &MockMessageHandler{}
		m := metrics.New("test")
		transient := errors.New("connection refused")
		mock.InOrder(
			handler.On("Handle", mock.Anything, msg).Return("payment.cancelled", transient).Twice(),
			handler.On("Handle", mock.Anything, msg).Return("payment.cancelled", nil).Once(),
		)

		ok := newConsumer(&MockReader{}, handler, m).Process(context.Background(), msg)

		assert.True(t, ok)
		handler.AssertNumberOfCalls(t, "Handle", 3)
		assert.InDelta(t, 2, outcome(m, "payment.cancelled", metrics.OutcomeRetried), 0)
		assert.InDelta(t, 1, outcome(m, "payment.cancelled", metrics.OutcomeApplied), 0)
	})

	t.Run("should give up when the context ends", func(t *testing.T) {
		handler := &MockMessageHandler{}
		ctx, cancel := context.WithCancel(context.Background())
		handler.On("Handle", mock.Anything, msg).
			Run(func(mock.Arguments) { cancel() }).
			Return("payment.completed", context.Canceled).Once()

		ok := newConsumer(&MockReader{}, handler, nil).Process(ctx, msg)

		assert.False(t, ok)
		handler.AssertNumberOfCalls(t, "Handle", 1)
	})
}

func TestConsumer_Run(t *testing.T) {
	first := kafka.Message{Value: []byte(`1`), Offset: 1}
	second := kafka.Message{Value: []byte(`2`), Offset: 2}

	t.Run("should commit each handled message in order and stop with the context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &MockReader{}
		handler := &MockMessageHandler{}

		mock.InOrder(
			reader.On("FetchMessage", ctx).Return(first, nil).Once(),
			handler.On("Handle", ctx, first).Return("payment.completed", nil).Once(),
			reader.On("CommitMessages", ctx, []kafka.Message{first}).Return(nil).Once(),
			reader.On("FetchMessage", ctx).Return(second, nil).Once(),
			handler.On("Handle", ctx, second).Return("unknown", consumer.ErrMalformedMessage).Once(),
			reader.On("CommitMessages", ctx, []kafka.Message{second}).Return(nil).Once(),
			reader.On("FetchMessage", ctx).
				Run(func(mock.Arguments) { cancel() }).
				Return(kafka.Message{}, context.Canceled).Once(),
		)

		newConsumer(reader, handler, nil).Run(ctx)

		reader.AssertExpectations(t)
		handler.AssertExpectations(t)
	})

	t.Run("should keep fetching after a fetch error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &MockReader{}
		handler := &MockMessageHandler{}

		mock.InOrder(
			reader.On("FetchMessage", ctx).Return(kafka.Message{}, errors.New("broker unavailable")).Once(),
			reader.On("FetchMessage", ctx).Return(first, nil).Once(),
			handler.On("Handle", ctx, first).Return("payment.completed", nil).Once(),
			reader.On("CommitMessages", ctx, []kafka.Message{first}).
				Run(func(mock.Arguments) { cancel() }).
				Return(nil).Once(),
			reader.On("FetchMessage", ctx).Return(kafka.Message{}, context.Canceled).Once(),
		)

		newConsumer(reader, handler, nil).Run(ctx)

		reader.AssertExpectations(t)
	})

	t.Run("should not commit a message interrupted by shutdown", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &MockReader{}
		handler := &MockMessageHandler{}

		reader.On("FetchMessage", ctx).Return(first, nil).Once()
		handler.On("Handle", ctx, first).
			Run(func(mock.Arguments) { cancel() }).
			Return("payment.completed", context.Canceled).Once()

		newConsumer(reader, handler, nil).Run(ctx)

		reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
	})
}

func TestConsumer_Close(t *testing.T) {
	t.Run("should close the reader", func(t *testing.T) {
		reader := &MockReader{}
		reader.On("Close").Return(nil).Once()

		require.NoError(t, newConsumer(reader, &MockMessageHandler{}, nil).Close())
		reader.AssertExpectations(t)
	})
}
