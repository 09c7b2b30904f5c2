// Package kafka consumes saga responses from the payment and restaurant
// services and turns them into order commands.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// ErrMalformedMessage marks records that can never be processed.
var ErrMalformedMessage = errors.New("malformed message")

// MessageReader is the subset of *kafka.Reader a consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageHandler applies one record. It reports the saga signal the record
// carried so outcomes can be counted per signal.
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) (signal string, err error)
}

// NewReader builds a consumer group reader for one topic.
func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
}

// Consumer runs a fetch, handle, commit loop.
//
// A record is committed once it was applied, or once it turned out to be
// malformed, stale (illegal transition) or about an unknown order. Any other
// failure is retried with exponential backoff until it succeeds or ctx ends,
// so an uncommitted record is never skipped.
type Consumer struct {
	reader     MessageReader
	handler    MessageHandler
	logger     *slog.Logger
	metrics    *metrics.Metrics
	newBackOff func() backoff.BackOff
	fetchDelay time.Duration
}

type ConsumerOption func(*Consumer)

// WithBackOff replaces the retry policy for failed records.
func WithBackOff(newBackOff func() backoff.BackOff) ConsumerOption {
	return func(c *Consumer) {
		c.newBackOff = newBackOff
	}
}

// WithFetchDelay sets the pause after a failed fetch.
func WithFetchDelay(d time.Duration) ConsumerOption {
	return func(c *Consumer) {
		c.fetchDelay = d
	}
}

func NewConsumer(
	name string,
	reader MessageReader,
	handler MessageHandler,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...ConsumerOption,
) *Consumer {
	c := &Consumer{
		reader:     reader,
		handler:    handler,
		logger:     logger.With("component", name),
		metrics:    m,
		newBackOff: defaultBackOff,
		fetchDelay: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.InfoContext(ctx, "Kafka consumer started")
	defer c.logger.InfoContext(context.Background(), "Kafka consumer stopped")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.ErrorContext(ctx, "Failed to fetch message", "error", err)
			if !sleep(ctx, c.fetchDelay) {
				return
			}
			continue
		}

		if !c.Process(ctx, msg) {
			return
		}

		if err = c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.ErrorContext(ctx, "Failed to commit message",
				"error", err, "partition", msg.Partition, "offset", msg.Offset)
		}
	}
}

// Process handles msg until it may be committed. It returns false when ctx
// ended first.
func (c *Consumer) Process(ctx context.Context, msg kafka.Message) bool {
	var signal, outcome string
	attempt := 0

	operation := func() error {
		attempt++
		var err error
		signal, err = c.handler.Handle(ctx, msg)

		switch {
		case err == nil:
			outcome = metrics.OutcomeApplied
		case errors.Is(err, ErrMalformedMessage):
			outcome = metrics.OutcomeMalformed
			c.logger.WarnContext(ctx, "Skipping malformed message",
				"error", err, "partition", msg.Partition, "offset", msg.Offset)
		case errors.Is(err, errs.ErrDomainRuleViolation), errors.Is(err, errs.ErrObjectNotFound):
			outcome = metrics.OutcomeSkipped
			c.logger.InfoContext(ctx, "Saga signal already applied or not applicable",
				"signal", signal, "key", string(msg.Key), "reason", err)
		default:
			return err
		}
		return nil
	}

	notify := func(err error, next time.Duration) {
		c.metrics.ObserveSagaSignal(signal, metrics.OutcomeRetried)
		c.logger.ErrorContext(ctx, "Failed to handle message, retrying",
			"error", err, "signal", signal, "attempt", attempt, "retry_in", next)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(c.newBackOff(), ctx), notify); err != nil {
		return false
	}

	c.metrics.ObserveSagaSignal(signal, outcome)
	return true
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
