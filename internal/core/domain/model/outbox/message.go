// Package outbox models messages that are stored in the same transaction as the
// aggregate change that produced them and published to the broker afterwards.
package outbox

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

	ErrMessageIsAlreadyPublished = errs.NewDomainRuleViolationError("outbox message is already published")
)

// Message is a pending or published integration event.
//
// The aggregate id is the order tracking id. Publishers use it as the partition
// key, so messages of one order keep their relative order on a topic.
type Message struct {
	id          kernel.UUID
	kind        string
	aggregateID kernel.UUID
	payload     []byte
	createdAt   time.Time
	publishedAt *time.Time

	isConstructed bool
}

func NewMessage(kind string, aggregateID kernel.UUID, payload []byte, createdAt time.Time) (*Message, error) {
	return RestoreMessage(kernel.NewUUID(), kind, aggregateID, payload, createdAt, nil)
}

func RestoreMessage(
	id kernel.UUID,
	kind string,
	aggregateID kernel.UUID,
	payload []byte,
	createdAt time.Time,
	publishedAt *time.Time,
) (*Message, error) {
	var kindErr, payloadErr, createdAtErr error
	if kind == "" {
		kindErr = errs.NewValueIsRequiredError("kind")
	}
	if len(payload) == 0 {
		payloadErr = errs.NewValueIsRequiredError("payload")
	}
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("created at")
	}

	if err := errors.Join(
		id.Validate(),
		aggregateID.Validate(),
		kindErr,
		payloadErr,
		createdAtErr,
	); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		kind:          kind,
		aggregateID:   aggregateID,
		payload:       payload,
		createdAt:     createdAt,
		publishedAt:   publishedAt,
		isConstructed: true,
	}, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) Kind() string {
	return m.kind
}

func (m *Message) AggregateID() kernel.UUID {
	return m.aggregateID
}

func (m *Message) Payload() []byte {
	return m.payload
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// PublishedAt is nil while the message waits for the relay.
func (m *Message) PublishedAt() *time.Time {
	return m.publishedAt
}

func (m *Message) IsPublished() bool {
	return m.publishedAt != nil
}

// MarkPublished records the moment the broker acknowledged the message.
func (m *Message) MarkPublished(at time.Time) error {
	if m.IsPublished() {
		return ErrMessageIsAlreadyPublished
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("published at")
	}

	m.publishedAt = &at
	return nil
}
