// Package outboxrepo persists failed notification sends so the background
// retry job can drain them without blocking or failing checkout requests.
package outboxrepo

import (
	"time"

	"marketplace/internal/core/ports"

	"github.com/google/uuid"
)

// NotificationDTO represents one failed notification send awaiting retry.
// Rows past the attempt limit are kept for audit and skipped by the retry job.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID   string    `gorm:"column:order_id;index;not null"`
	Recipient string    `gorm:"column:recipient;not null"`
	Kind      string    `gorm:"column:kind;not null"`
	Subject   string    `gorm:"column:subject;not null"`
	HTMLBody  string    `gorm:"column:html_body;type:text;not null"`
	Attempts  int       `gorm:"column:attempts;not null;default:0"`
	LastError string    `gorm:"column:last_error;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the database table name for outbox entries.
func (NotificationDTO) TableName() string {
	return "notification_outbox"
}

func fromRecord(record ports.NotificationRecord) NotificationDTO {
	return NotificationDTO{
		ID:        record.ID,
		OrderID:   record.OrderID,
		Recipient: record.Recipient,
		Kind:      record.Kind,
		Subject:   record.Subject,
		HTMLBody:  record.HTMLBody,
		Attempts:  record.Attempts,
		LastError: record.LastError,
	}
}

func toRecord(dto NotificationDTO) ports.NotificationRecord {
	return ports.NotificationRecord{
		ID:        dto.ID,
		OrderID:   dto.OrderID,
		Recipient: dto.Recipient,
		Kind:      dto.Kind,
		Subject:   dto.Subject,
		HTMLBody:  dto.HTMLBody,
		Attempts:  dto.Attempts,
		LastError: dto.LastError,
	}
}
