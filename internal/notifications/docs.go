// Package notifications builds and dispatches the order confirmation emails.
//
// After an order is committed, the dispatcher fans out one message to the
// customer and one per vendor group over a bounded worker pool, each send
// with its own timeout. A failed recipient never cancels the other sends and
// never fails the checkout: the outcome is logged, counted in metrics, and
// the message is written to the notification outbox so the background retry
// job can drain it later.
package notifications
