package outboxrepo

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/outbox"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending claims the oldest unpublished messages with FOR UPDATE SKIP LOCKED.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		messages = append(messages, m)
	}

	return messages, nil
}

func (r *GormOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", message.ID().Raw()).
		Update("published_at", message.PublishedAt())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", message.ID().String())
	}

	return nil
}

func (r *GormOutboxRepository) DeletePublishedBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at < ?", before).
		Delete(&MessageDTO{})

	return result.RowsAffected, result.Error
}
