package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
)

// ProductRepository defines the read-only catalog access used by checkout.
type ProductRepository interface {
	// FindBySlugs resolves the given slugs to their catalog records, joined
	// against the owning vendor's contact record. Slugs not present in the
	// catalog are absent from the result; only a data-access failure is an
	// error. Callers should deduplicate slugs before calling.
	FindBySlugs(ctx context.Context, slugs []string) (catalog.Lookup, error)
}
