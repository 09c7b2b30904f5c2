package cmd

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost          string
	KafkaConsumerGroup string

	KafkaPaymentRequestTopic             string
	KafkaPaymentResponseTopic            string
	KafkaRestaurantApprovalRequestTopic  string
	KafkaRestaurantApprovalResponseTopic string

	OutboxBatchSize       int
	OutboxRelaySchedule   string
	OutboxCleanupSchedule string
	OutboxRetention       time.Duration
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Validate() error {
	required := []struct{ name, value string }{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"KAFKA_HOST", c.KafkaHost},
		{"KAFKA_CONSUMER_GROUP", c.KafkaConsumerGroup},
		{"KAFKA_PAYMENT_REQUEST_TOPIC", c.KafkaPaymentRequestTopic},
		{"KAFKA_PAYMENT_RESPONSE_TOPIC", c.KafkaPaymentResponseTopic},
		{"KAFKA_RESTAURANT_APPROVAL_REQUEST_TOPIC", c.KafkaRestaurantApprovalRequestTopic},
		{"KAFKA_RESTAURANT_APPROVAL_RESPONSE_TOPIC", c.KafkaRestaurantApprovalResponseTopic},
		{"OUTBOX_RELAY_SCHEDULE", c.OutboxRelaySchedule},
		{"OUTBOX_CLEANUP_SCHEDULE", c.OutboxCleanupSchedule},
	}

	var err error
	for _, r := range required {
		if r.value == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError(r.name))
		}
	}
	if c.OutboxBatchSize <= 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("OUTBOX_BATCH_SIZE", c.OutboxBatchSize, 1, nil))
	}
	if c.OutboxRetention <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("OUTBOX_RETENTION"))
	}
	return err
}
