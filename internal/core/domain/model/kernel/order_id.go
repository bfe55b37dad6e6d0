package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"marketplace/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// GenerateOrderID or OrderIDFromString. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via GenerateOrderID or OrderIDFromString")

const orderIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var orderIDPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)

// OrderID is a value object that represents the human-readable order identifier
// shown to customers and vendors: two uppercase letters followed by a four-digit
// number, e.g. "QW4821".
//
// Identifiers are drawn uniformly at random and are NOT globally unique; the
// keyspace holds 26*26*9000 values, so collisions are expected over time.
// Uniqueness is enforced at persistence time by a unique constraint on the
// orders table, with the caller regenerating and retrying on collision.
//
// The zero value is invalid and must be constructed using GenerateOrderID or
// OrderIDFromString.
type OrderID struct {
	value string
}

// GenerateOrderID produces a new random order identifier. Letters are drawn
// uniformly from the 26-letter alphabet and the number uniformly from
// [1000, 9999].
func GenerateOrderID() OrderID {
	letters := []byte{
		orderIDLetters[rand.IntN(len(orderIDLetters))],
		orderIDLetters[rand.IntN(len(orderIDLetters))],
	}
	number := 1000 + rand.IntN(9000)
	return OrderID{value: fmt.Sprintf("%s%d", letters, number)}
}

// OrderIDFromString parses an order identifier from its string representation.
// Returns an error if the string does not match the [A-Z]{2}[0-9]{4} pattern.
// This is typically used when reconstructing orders from persistence.
func OrderIDFromString(s string) (OrderID, error) {
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not match pattern AA0000", s))
	}
	return OrderID{value: s}, nil
}

// String returns the identifier as shown to customers, e.g. "QW4821".
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
