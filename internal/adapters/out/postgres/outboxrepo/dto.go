// Package outboxrepo stores outbox messages in the outbox_messages table.
package outboxrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind        string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Raw(),
		Kind:        m.Kind(),
		AggregateID: m.AggregateID().Raw(),
		Payload:     m.Payload(),
		CreatedAt:   m.CreatedAt(),
		PublishedAt: m.PublishedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	aggregateID, err := kernel.UUIDFromRaw(dto.AggregateID)
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, dto.Kind, aggregateID, dto.Payload, dto.CreatedAt, dto.PublishedAt)
}
