package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/notifications"

	"github.com/robfig/cron/v3"
)

const (
	// retryBatchSize bounds how many outbox records one tick processes.
	retryBatchSize = 20
	// retryMaxAttempts is the total send attempts per record, counting the
	// original dispatch. Records at the limit stay in the table for audit.
	retryMaxAttempts = 5
	// retrySendTimeout bounds one re-send against a slow mail transport.
	retrySendTimeout = 10 * time.Second
)

// NotificationRetryJob re-sends order emails whose original dispatch failed.
// Runs every 30 seconds over the notification outbox.
type NotificationRetryJob struct {
	outbox  ports.NotificationOutboxRepository
	mailer  ports.Mailer
	metrics *notifications.Metrics
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRetryJob creates a job that drains the notification outbox.
func NewNotificationRetryJob(
	outbox ports.NotificationOutboxRepository,
	mailer ports.Mailer,
	metrics *notifications.Metrics,
	logger *slog.Logger,
) *NotificationRetryJob {
	return &NotificationRetryJob{
		outbox:  outbox,
		mailer:  mailer,
		metrics: metrics,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_retry_job"),
	}
}

// Start begins the notification retry job to run every 30 seconds.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every 30 seconds)")
	return nil
}

// Stop stops the notification retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}

// RunOnce processes one batch of retryable outbox records.
func (j *NotificationRetryJob) RunOnce(ctx context.Context) {
	records, err := j.outbox.FetchRetryable(ctx, retryBatchSize, retryMaxAttempts)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to fetch retryable notifications", "error", err)
		return
	}

	for _, record := range records {
		j.retry(ctx, record)
	}
}

func (j *NotificationRetryJob) retry(ctx context.Context, record ports.NotificationRecord) {
	j.metrics.ObserveRetry()

	sendCtx, cancel := context.WithTimeout(ctx, retrySendTimeout)
	defer cancel()

	err := j.mailer.Send(sendCtx, ports.MailMessage{
		To:       record.Recipient,
		Subject:  record.Subject,
		HTMLBody: record.HTMLBody,
	})
	j.metrics.ObserveSend(record.Kind, err)

	if err != nil {
		j.logger.WarnContext(ctx, "Notification retry failed",
			"order_id", record.OrderID, "recipient", record.Recipient,
			"attempt", record.Attempts+1, "error", err)

		if markErr := j.outbox.MarkFailed(ctx, record.ID, err.Error()); markErr != nil {
			j.logger.ErrorContext(ctx, "Failed to record retry failure",
				"order_id", record.OrderID, "error", markErr)
		}
		return
	}

	j.logger.InfoContext(ctx, "Notification delivered on retry",
		"order_id", record.OrderID, "recipient", record.Recipient, "kind", record.Kind)

	if markErr := j.outbox.MarkDelivered(ctx, record.ID); markErr != nil {
		j.logger.ErrorContext(ctx, "Failed to remove delivered notification",
			"order_id", record.OrderID, "error", markErr)
	}
}
