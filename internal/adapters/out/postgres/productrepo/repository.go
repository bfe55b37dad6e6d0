package productrepo

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindBySlugs resolves slugs to catalog records joined against the owning
// vendor's contact record. Slugs without a catalog row are absent from the
// result; only a data-access failure is an error.
func (r *GormProductRepository) FindBySlugs(ctx context.Context, slugs []string) (catalog.Lookup, error) {
	lookup := make(catalog.Lookup, len(slugs))
	if len(slugs) == 0 {
		return lookup, nil
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.slug,
			p.product_name,
			v.store_id,
			v.store_name,
			v.email
		FROM products p
		JOIN vendors v ON p.store_id = v.store_id
		WHERE p.slug = ANY(?)
	`, pq.Array(slugs)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record catalog.Product
		if err = rows.Scan(
			&record.Slug,
			&record.ProductName,
			&record.StoreID,
			&record.StoreName,
			&record.VendorEmail,
		); err != nil {
			return nil, err
		}
		lookup[record.Slug] = record
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lookup, nil
}
