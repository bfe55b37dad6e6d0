// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the marketplace. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - VendorPartitioner: partitions validated cart lines by owning vendor
//
// Domain services coordinate between aggregates and read models, keeping the
// aggregates themselves free of cross-entity concerns.
package services
