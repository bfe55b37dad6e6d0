package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/notifications"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MailerMock struct{ mock.Mock }

func (m *MailerMock) Send(ctx context.Context, msg ports.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type OutboxMock struct{ mock.Mock }

func (m *OutboxMock) Enqueue(ctx context.Context, record ports.NotificationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *OutboxMock) FetchRetryable(ctx context.Context, limit, maxAttempts int) ([]ports.NotificationRecord, error) {
	args := m.Called(ctx, limit, maxAttempts)
	if records, ok := args.Get(0).([]ports.NotificationRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OutboxMock) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OutboxMock) MarkFailed(ctx context.Context, id uuid.UUID, sendErr string) error {
	args := m.Called(ctx, id, sendErr)
	return args.Error(0)
}

func newTestJob(outbox ports.NotificationOutboxRepository, mailer ports.Mailer) *jobs.NotificationRetryJob {
	metrics := notifications.NewMetricsWithRegisterer(prometheus.NewRegistry())
	return jobs.NewNotificationRetryJob(outbox, mailer, metrics, slog.Default())
}

func pendingRecord(recipient string) ports.NotificationRecord {
	return ports.NotificationRecord{
		ID:        uuid.New(),
		OrderID:   "AB1234",
		Recipient: recipient,
		Kind:      ports.RecipientVendor,
		Subject:   "New Order Received",
		HTMLBody:  "<p>order</p>",
		Attempts:  1,
		LastError: "connection refused",
	}
}

func TestNotificationRetryJob_DeliveredRecordsAreRemoved(t *testing.T) {
	record := pendingRecord("sales@acme.example")

	outbox := new(OutboxMock)
	outbox.On("FetchRetryable", mock.Anything, mock.Anything, mock.Anything).
		Return([]ports.NotificationRecord{record}, nil).Once()
	outbox.On("MarkDelivered", mock.Anything, record.ID).Return(nil).Once()

	mailer := new(MailerMock)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.MailMessage) bool {
		return msg.To == record.Recipient && msg.Subject == record.Subject
	})).Return(nil).Once()

	job := newTestJob(outbox, mailer)
	job.RunOnce(t.Context())

	outbox.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestNotificationRetryJob_FailedRecordsAreMarked(t *testing.T) {
	record := pendingRecord("sales@acme.example")
	sendErr := errors.New("smtp: 451 temporary failure")

	outbox := new(OutboxMock)
	outbox.On("FetchRetryable", mock.Anything, mock.Anything, mock.Anything).
		Return([]ports.NotificationRecord{record}, nil).Once()
	outbox.On("MarkFailed", mock.Anything, record.ID, sendErr.Error()).Return(nil).Once()

	mailer := new(MailerMock)
	mailer.On("Send", mock.Anything, mock.Anything).Return(sendErr).Once()

	job := newTestJob(outbox, mailer)
	job.RunOnce(t.Context())

	outbox.AssertExpectations(t)
	outbox.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything)
}

func TestNotificationRetryJob_OneFailureDoesNotStopTheBatch(t *testing.T) {
	failing := pendingRecord("sales@acme.example")
	healthy := pendingRecord("orders@oakline.example")

	outbox := new(OutboxMock)
	outbox.On("FetchRetryable", mock.Anything, mock.Anything, mock.Anything).
		Return([]ports.NotificationRecord{failing, healthy}, nil).Once()
	outbox.On("MarkFailed", mock.Anything, failing.ID, mock.Anything).Return(nil).Once()
	outbox.On("MarkDelivered", mock.Anything, healthy.ID).Return(nil).Once()

	mailer := new(MailerMock)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.MailMessage) bool {
		return msg.To == failing.Recipient
	})).Return(errors.New("connection refused")).Once()
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

	job := newTestJob(outbox, mailer)
	job.RunOnce(t.Context())

	outbox.AssertExpectations(t)
	mailer.AssertNumberOfCalls(t, "Send", 2)
}

func TestNotificationRetryJob_FetchFailureIsLoggedOnly(t *testing.T) {
	outbox := new(OutboxMock)
	outbox.On("FetchRetryable", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	mailer := new(MailerMock)

	job := newTestJob(outbox, mailer)
	job.RunOnce(t.Context())

	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	require.True(t, outbox.AssertExpectations(t))
}
