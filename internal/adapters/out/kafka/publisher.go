// Package kafka publishes outbox messages to Kafka topics.
package kafka

import (
	"context"
	"fmt"
	"strings"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/outbox"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// Message headers set on every published record.
const (
	HeaderKind      = "kind"
	HeaderMessageID = "message-id"
)

// Topics names the request topics this service writes to.
type Topics struct {
	PaymentRequest            string
	RestaurantApprovalRequest string
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher. Payment requests and restaurant
// approval requests go to separate topics; the order tracking id is the key.
type Publisher struct {
	writer  MessageWriter
	routes  map[string]string
	metrics *metrics.Metrics
}

// NewWriter builds a writer for the given brokers. The topic is set per
// message, so one writer serves every route.
func NewWriter(brokersCSV string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(SplitBrokers(brokersCSV)...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer MessageWriter, topics Topics, m *metrics.Metrics) (*Publisher, error) {
	if writer == nil {
		return nil, errs.NewValueIsRequiredError("writer")
	}
	if topics.PaymentRequest == "" {
		return nil, errs.NewValueIsRequiredError("payment request topic")
	}
	if topics.RestaurantApprovalRequest == "" {
		return nil, errs.NewValueIsRequiredError("restaurant approval request topic")
	}

	return &Publisher{
		writer: writer,
		routes: map[string]string{
			string(events.KindOrderCreated):   topics.PaymentRequest,
			string(events.KindOrderCancelled): topics.PaymentRequest,
			string(events.KindOrderPaid):      topics.RestaurantApprovalRequest,
		},
		metrics: m,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	topic, ok := p.routes[message.Kind()]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("no topic for %q", message.Kind()))
	}

	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(message.AggregateID().String()),
		Value: message.Payload(),
		Headers: []kafka.Header{
			{Key: HeaderKind, Value: []byte(message.Kind())},
			{Key: HeaderMessageID, Value: []byte(message.ID().String())},
		},
		Time: message.CreatedAt(),
	})
	p.metrics.ObserveOutboxPublish(message.Kind(), err)
	if err != nil {
		return fmt.Errorf("failed to write %s to %s: %w", message.Kind(), topic, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// SplitBrokers parses a comma separated broker list.
func SplitBrokers(brokersCSV string) []string {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
