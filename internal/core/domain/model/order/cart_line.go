package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CartLine is one product+quantity entry of a checkout request. It carries the
// prices exactly as the client submitted them; they are not re-validated
// against the catalog (displayed price is trust-on-input).
//
// CartLine is transient: it only exists inside a checkout request and inside
// the serialized cart snapshot of a persisted order.
type CartLine struct {
	slug            string
	productName     string
	unitPrice       decimal.Decimal
	discountedPrice *decimal.Decimal
	quantity        int
}

// NewCartLine creates a validated cart line.
// The slug and product name must be non-empty, the unit price non-negative,
// and the quantity at least 1. The discounted price is optional.
func NewCartLine(
	slug string,
	productName string,
	unitPrice decimal.Decimal,
	discountedPrice *decimal.Decimal,
	quantity int,
) (CartLine, error) {
	var line CartLine

	if err := errors.Join(
		line.setSlug(slug),
		line.setProductName(productName),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return CartLine{}, err
	}

	if discountedPrice != nil {
		price := discountedPrice.Copy()
		line.discountedPrice = &price
	}

	return line, nil
}

// Slug returns the product's unique human-readable lookup key.
func (l CartLine) Slug() string {
	return l.slug
}

// ProductName returns the product name as submitted by the client.
func (l CartLine) ProductName() string {
	return l.productName
}

// UnitPrice returns the client-submitted original price for one unit.
func (l CartLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// DiscountedPrice returns the client-submitted discounted unit price,
// or nil if the line has no discount.
func (l CartLine) DiscountedPrice() *decimal.Decimal {
	if l.discountedPrice == nil {
		return nil
	}
	price := l.discountedPrice.Copy()
	return &price
}

// Quantity returns the number of units ordered.
func (l CartLine) Quantity() int {
	return l.quantity
}

func (l *CartLine) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	l.slug = slug
	return nil
}

func (l *CartLine) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	l.productName = productName
	return nil
}

func (l *CartLine) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("productPrice")
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *CartLine) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
