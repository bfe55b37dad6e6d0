// Package catalog contains the read-only catalog view used during checkout.
// Checkout never mutates the catalog; it only resolves cart line slugs to the
// authoritative product and vendor records.
package catalog

// Product is the authoritative catalog record for one product slug, joined
// against the owning vendor's contact record. At lookup time a slug identifies
// at most one product.
type Product struct {
	Slug        string
	ProductName string
	StoreID     string
	StoreName   string
	VendorEmail string
}

// Lookup maps product slugs to their catalog records. Slugs that do not exist
// in the catalog are simply absent from the map; absence is not an error of
// the lookup itself.
type Lookup map[string]Product
