// Package kernel contains shared value objects used across the marketplace
// domain model. Value objects are immutable, compared by value, and can only
// be created through their constructor functions.
package kernel
