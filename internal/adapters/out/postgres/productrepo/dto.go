// Package productrepo provides read-only catalog access for checkout.
// Products and vendors are owned by the catalog side of the system; checkout
// only joins them to resolve cart line slugs to authoritative records.
package productrepo

// ProductDTO represents the catalog row for one product.
// The slug is the unique human-readable lookup key.
type ProductDTO struct {
	Slug        string `gorm:"column:slug;primaryKey"`
	ProductName string `gorm:"column:product_name;not null"`
	StoreID     string `gorm:"column:store_id;index;not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// VendorDTO represents the vendor contact row joined during catalog lookup.
type VendorDTO struct {
	StoreID   string `gorm:"column:store_id;primaryKey"`
	StoreName string `gorm:"column:store_name;not null"`
	Email     string `gorm:"column:email;not null"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}
