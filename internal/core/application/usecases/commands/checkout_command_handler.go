package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// orderIDAttempts bounds how many times the handler regenerates an order ID
// after a uniqueness collision before giving up.
const orderIDAttempts = 3

// ErrOrderIDExhausted is returned when every generated order ID collided with
// an existing order. With a 6-character ID space this signals either an
// extremely full table or a broken random source.
var ErrOrderIDExhausted = errors.New("could not allocate a unique order id")

// CheckoutCommandHandler handles the business logic for placing an order.
// Resolves cart slugs against the catalog, partitions the cart per vendor,
// persists the order and fans out notifications after commit.
type CheckoutCommandHandler struct {
	uowFactory  OrderUoWFactory
	products    ports.ProductRepository
	partitioner services.VendorPartitioner
	notifier    OrderNotifier
	logger      *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires an OrderUoWFactory for transactional persistence, a product
// repository for slug resolution and a notifier for post-commit emails.
func NewCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	products ports.ProductRepository,
	notifier OrderNotifier,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		products:    products,
		partitioner: services.NewVendorPartitioner(),
		notifier:    notifier,
		logger:      logger.With("component", "checkout_handler"),
	}
}

// Handle processes a checkout command and returns the placed order.
//
// The happy path resolves the cart against the catalog, builds the order with
// a freshly generated ID and persists it in one transaction. An ID collision
// is retried with a new ID up to orderIDAttempts times. Notification dispatch
// runs after the commit and never fails the checkout.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lookup, err := h.products.FindBySlugs(ctx, cmd.Slugs())
	if err != nil {
		return nil, fmt.Errorf("resolve cart products: %w", err)
	}

	vendorGroups, err := h.partitioner.Partition(cmd.CartItems(), lookup)
	if err != nil {
		return nil, err
	}

	placed, err := h.persistWithFreshID(ctx, cmd, vendorGroups)
	if err != nil {
		return nil, err
	}

	// The order is committed; notification failures are the notifier's
	// problem from here on. Detach from the request context so a client
	// disconnect does not cancel the sends.
	h.notifier.Dispatch(context.WithoutCancel(ctx), placed)

	return placed, nil
}

// persistWithFreshID generates an order ID and stores the order, retrying
// with a new ID on a uniqueness collision.
func (h *CheckoutCommandHandler) persistWithFreshID(
	ctx context.Context,
	cmd CheckoutCommand,
	vendorGroups []order.VendorGroup,
) (*order.Order, error) {
	for attempt := 1; attempt <= orderIDAttempts; attempt++ {
		placed, err := order.NewOrder(
			kernel.GenerateOrderID(),
			cmd.ClientDetails(),
			cmd.CartItems(),
			cmd.TotalCost(),
			vendorGroups,
		)
		if err != nil {
			return nil, err
		}

		err = h.persist(ctx, placed)
		if err == nil {
			return placed, nil
		}
		if !errors.Is(err, ports.ErrOrderIDTaken) {
			return nil, err
		}

		h.logger.WarnContext(ctx, "order id collision, regenerating",
			"order_id", placed.ID().String(), "attempt", attempt)
	}

	return nil, ErrOrderIDExhausted
}

func (h *CheckoutCommandHandler) persist(ctx context.Context, placed *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
