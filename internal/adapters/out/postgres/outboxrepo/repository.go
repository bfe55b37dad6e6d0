package outboxrepo

import (
	"context"

	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationOutboxRepository implements NotificationOutboxRepository
// using GORM.
type GormNotificationOutboxRepository struct {
	db *gorm.DB
}

// NewGormNotificationOutboxRepository creates a new GORM outbox repository.
func NewGormNotificationOutboxRepository(db *gorm.DB) *GormNotificationOutboxRepository {
	return &GormNotificationOutboxRepository{db: db}
}

// Enqueue stores a failed send for later retry.
func (r *GormNotificationOutboxRepository) Enqueue(ctx context.Context, record ports.NotificationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	dto := fromRecord(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchRetryable returns up to limit records below the attempt cap, oldest first.
func (r *GormNotificationOutboxRepository) FetchRetryable(
	ctx context.Context,
	limit, maxAttempts int,
) ([]ports.NotificationRecord, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("attempts < ?", maxAttempts).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]ports.NotificationRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}
	return records, nil
}

// MarkDelivered removes a record after a successful retry.
func (r *GormNotificationOutboxRepository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&NotificationDTO{}, "id = ?", id).Error
}

// MarkFailed increments a record's attempt count and stores the last error.
func (r *GormNotificationOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, sendErr string) error {
	return r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": sendErr,
		}).Error
}
