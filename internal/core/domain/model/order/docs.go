// Package order contains the order aggregate and its value objects.
//
// An order is the immutable record of one successful checkout: a snapshot of
// the client's contact details, the cart lines exactly as submitted, the
// caller-supplied total, and one vendor group per cart line describing which
// store owns the line and where its notification goes. Once created the order
// is never updated or deleted; there is no status lifecycle in this system.
package order
