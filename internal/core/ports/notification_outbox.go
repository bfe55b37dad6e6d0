package ports

import (
	"context"

	"github.com/google/uuid"
)

// Recipient kinds for notification outbox entries.
const (
	RecipientCustomer = "customer"
	RecipientVendor   = "vendor"
)

// NotificationRecord is a durable record of one notification send that failed
// at dispatch time. Records are drained by the background retry job; after a
// bounded number of attempts a record is abandoned and kept for audit.
type NotificationRecord struct {
	ID        uuid.UUID
	OrderID   string
	Recipient string
	Kind      string
	Subject   string
	HTMLBody  string
	Attempts  int
	LastError string
}

// NotificationOutboxRepository persists failed notification sends for retry.
type NotificationOutboxRepository interface {
	// Enqueue stores a failed send for later retry.
	Enqueue(ctx context.Context, record NotificationRecord) error

	// FetchRetryable returns up to limit records whose attempt count is below
	// maxAttempts, oldest first.
	FetchRetryable(ctx context.Context, limit, maxAttempts int) ([]NotificationRecord, error)

	// MarkDelivered removes a record after a successful retry.
	MarkDelivered(ctx context.Context, id uuid.UUID) error

	// MarkFailed increments a record's attempt count and stores the last error.
	MarkFailed(ctx context.Context, id uuid.UUID, sendErr string) error
}
