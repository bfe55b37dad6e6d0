package order

import (
	"errors"

	"marketplace/internal/pkg/errs"
)

// VendorGroup records which vendor owns one cart line and where that line's
// notification is routed. One group is emitted per cart line in cart order;
// groups are never deduplicated, so a vendor with several lines in the cart
// appears once per line, each entry carrying that line's product name.
//
// The product and store names come from the catalog record, not from client
// input. VendorGroup is derived during checkout and never mutated afterwards.
type VendorGroup struct {
	storeID     string
	storeName   string
	productName string
	vendorEmail string
}

// NewVendorGroup creates a validated vendor group entry.
func NewVendorGroup(storeID, storeName, productName, vendorEmail string) (VendorGroup, error) {
	var group VendorGroup

	if err := errors.Join(
		group.setStoreID(storeID),
		group.setStoreName(storeName),
		group.setProductName(productName),
		group.setVendorEmail(vendorEmail),
	); err != nil {
		return VendorGroup{}, err
	}

	return group, nil
}

// StoreID returns the owning store's identifier.
func (g VendorGroup) StoreID() string {
	return g.storeID
}

// StoreName returns the owning store's display name from the catalog.
func (g VendorGroup) StoreName() string {
	return g.storeName
}

// ProductName returns the catalog product name for this line.
func (g VendorGroup) ProductName() string {
	return g.productName
}

// VendorEmail returns the vendor contact address for notification routing.
func (g VendorGroup) VendorEmail() string {
	return g.vendorEmail
}

func (g *VendorGroup) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeId")
	}
	g.storeID = storeID
	return nil
}

func (g *VendorGroup) setStoreName(storeName string) error {
	if storeName == "" {
		return errs.NewValueIsRequiredError("storeName")
	}
	g.storeName = storeName
	return nil
}

func (g *VendorGroup) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	g.productName = productName
	return nil
}

func (g *VendorGroup) setVendorEmail(vendorEmail string) error {
	if vendorEmail == "" {
		return errs.NewValueIsRequiredError("vendorEmail")
	}
	g.vendorEmail = vendorEmail
	return nil
}
