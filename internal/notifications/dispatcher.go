package notifications

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxConcurrent = 4
	defaultSendTimeout   = 10 * time.Second
)

// Result reports the outcome of one send attempt.
type Result struct {
	Recipient string
	Kind      string
	Err       error
}

// Dispatcher fans out the order notification emails: one confirmation to the
// customer, one message per vendor group. Sends run concurrently over a
// bounded pool with a timeout per recipient. A failed send is recorded in the
// outbox for retry and reported in the results; it never cancels sibling
// sends, and the order it refers to is already committed, so the caller must
// never translate a dispatch failure into a checkout failure.
type Dispatcher struct {
	mailer        ports.Mailer
	outbox        ports.NotificationOutboxRepository
	metrics       *Metrics
	logger        *slog.Logger
	maxConcurrent int
	sendTimeout   time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMaxConcurrent bounds how many sends run at once.
func WithMaxConcurrent(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxConcurrent = n
		}
	}
}

// WithSendTimeout bounds how long one recipient's send may take.
func WithSendTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

// NewDispatcher creates a dispatcher over the given mail transport and outbox.
func NewDispatcher(
	mailer ports.Mailer,
	outbox ports.NotificationOutboxRepository,
	metrics *Metrics,
	logger *slog.Logger,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		mailer:        mailer,
		outbox:        outbox,
		metrics:       metrics,
		logger:        logger.With("component", "notification_dispatcher"),
		maxConcurrent: defaultMaxConcurrent,
		sendTimeout:   defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends the customer confirmation and one message per vendor group.
// Results come back in recipient order: customer first, then vendor groups in
// cart order, regardless of the order sends completed in.
func (d *Dispatcher) Dispatch(ctx context.Context, o *order.Order) []Result {
	type outboundMessage struct {
		msg  ports.MailMessage
		kind string
	}

	groups := o.VendorGroups()
	outbound := make([]outboundMessage, 0, len(groups)+1)

	customerMsg, err := BuildCustomerMessage(o)
	if err != nil {
		// Template failure is a programming error; report it as a failed
		// customer send rather than dropping the vendor messages.
		d.logger.ErrorContext(ctx, "failed to render customer message",
			"order_id", o.ID().String(), "error", err)
		return d.dispatchVendorsOnly(ctx, o, Result{
			Recipient: o.ClientDetails().Email, Kind: ports.RecipientCustomer, Err: err,
		})
	}
	outbound = append(outbound, outboundMessage{msg: customerMsg, kind: ports.RecipientCustomer})

	for _, group := range groups {
		vendorMsg, buildErr := BuildVendorMessage(o, group)
		if buildErr != nil {
			d.logger.ErrorContext(ctx, "failed to render vendor message",
				"order_id", o.ID().String(), "store_id", group.StoreID(), "error", buildErr)
			continue
		}
		outbound = append(outbound, outboundMessage{msg: vendorMsg, kind: ports.RecipientVendor})
	}

	results := make([]Result, len(outbound))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(d.maxConcurrent)
	for i, out := range outbound {
		g.Go(func() error {
			results[i] = d.send(groupCtx, o.ID().String(), out.kind, out.msg)
			// Always nil: one recipient's failure must not cancel siblings.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (d *Dispatcher) dispatchVendorsOnly(ctx context.Context, o *order.Order, customerResult Result) []Result {
	groups := o.VendorGroups()
	results := make([]Result, 0, len(groups)+1)
	results = append(results, customerResult)

	for _, group := range groups {
		vendorMsg, err := BuildVendorMessage(o, group)
		if err != nil {
			results = append(results, Result{Recipient: group.VendorEmail(), Kind: ports.RecipientVendor, Err: err})
			continue
		}
		results = append(results, d.send(ctx, o.ID().String(), ports.RecipientVendor, vendorMsg))
	}
	return results
}

// send attempts one delivery within the per-recipient timeout and records the
// outcome. Failures are queued in the outbox for the retry job.
func (d *Dispatcher) send(ctx context.Context, orderID, kind string, msg ports.MailMessage) Result {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	err := d.mailer.Send(sendCtx, msg)
	d.metrics.ObserveSend(kind, err)

	if err != nil {
		d.logger.ErrorContext(ctx, "notification send failed",
			"order_id", orderID, "kind", kind, "recipient", msg.To, "error", err)

		record := ports.NotificationRecord{
			OrderID:   orderID,
			Recipient: msg.To,
			Kind:      kind,
			Subject:   msg.Subject,
			HTMLBody:  msg.HTMLBody,
			Attempts:  1,
			LastError: err.Error(),
		}
		if enqueueErr := d.outbox.Enqueue(context.WithoutCancel(ctx), record); enqueueErr != nil {
			d.logger.ErrorContext(ctx, "failed to enqueue notification for retry",
				"order_id", orderID, "recipient", msg.To, "error", enqueueErr)
		}
	}

	return Result{Recipient: msg.To, Kind: kind, Err: err}
}
