package kafka_test

import (
	"context"

	"ordering/internal/core/application/usecases/commands"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type MockCompletePaymentHandler struct {
	mock.Mock
}

func (m *MockCompletePaymentHandler) Handle(ctx context.Context, cmd commands.CompletePaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCancelPaymentHandler struct {
	mock.Mock
}

func (m *MockCancelPaymentHandler) Handle(ctx context.Context, cmd commands.CancelPaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockApproveOrderHandler struct {
	mock.Mock
}

func (m *MockApproveOrderHandler) Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRejectOrderHandler struct {
	mock.Mock
}

func (m *MockRejectOrderHandler) Handle(ctx context.Context, cmd commands.RejectOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockMessageHandler struct {
	mock.Mock
}

func (m *MockMessageHandler) Handle(ctx context.Context, msg kafka.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

type MockReader struct {
	mock.Mock
}

func (m *MockReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafka.Message), args.Error(1)
}

func (m *MockReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *MockReader) Close() error {
	return m.Called().Error(0)
}
