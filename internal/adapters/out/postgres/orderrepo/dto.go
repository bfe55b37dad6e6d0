// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Client details, cart items, and vendor groups are stored
// as serialized JSON snapshots rather than normalized relations so they can be
// reconstructed byte-for-byte, in order, for audit and notification purposes.
package orderrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for a persisted order. The
// human-readable order identifier is the primary key; its uniqueness
// constraint is what the checkout handler's regenerate-and-retry loop
// relies on.
type OrderDTO struct {
	OrderID       string          `gorm:"column:order_id;primaryKey;size:6"`
	ClientDetails []byte          `gorm:"column:client_details;type:jsonb;not null"`
	CartItems     []byte          `gorm:"column:cart_items;type:jsonb;not null"`
	TotalCost     decimal.Decimal `gorm:"column:total_cost;type:numeric(12,2);not null"`
	VendorDetails []byte          `gorm:"column:vendor_details;type:jsonb;not null"`
	OrderDate     time.Time       `gorm:"column:order_date;not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// cartItemSnapshot mirrors the client-submitted cart line in the persisted
// cart snapshot. Field names follow the external checkout contract.
type cartItemSnapshot struct {
	Slug            string           `json:"slug"`
	ProductName     string           `json:"productName"`
	ProductPrice    decimal.Decimal  `json:"productPrice"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
	Quantity        int              `json:"quantity"`
}

// vendorGroupSnapshot mirrors one vendor group in the persisted vendor
// details snapshot.
type vendorGroupSnapshot struct {
	StoreID     string `json:"store_id"`
	StoreName   string `json:"store_name"`
	ProductName string `json:"productName"`
	VendorEmail string `json:"VendorEmail"`
}

// fromDomain converts an order aggregate to its database representation,
// serializing the snapshots in cart order.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	clientJSON, err := json.Marshal(aggregate.ClientDetails())
	if err != nil {
		return OrderDTO{}, err
	}

	items := aggregate.CartItems()
	itemSnapshots := make([]cartItemSnapshot, 0, len(items))
	for _, item := range items {
		itemSnapshots = append(itemSnapshots, cartItemSnapshot{
			Slug:            item.Slug(),
			ProductName:     item.ProductName(),
			ProductPrice:    item.UnitPrice(),
			DiscountedPrice: item.DiscountedPrice(),
			Quantity:        item.Quantity(),
		})
	}
	itemsJSON, err := json.Marshal(itemSnapshots)
	if err != nil {
		return OrderDTO{}, err
	}

	groups := aggregate.VendorGroups()
	groupSnapshots := make([]vendorGroupSnapshot, 0, len(groups))
	for _, group := range groups {
		groupSnapshots = append(groupSnapshots, vendorGroupSnapshot{
			StoreID:     group.StoreID(),
			StoreName:   group.StoreName(),
			ProductName: group.ProductName(),
			VendorEmail: group.VendorEmail(),
		})
	}
	groupsJSON, err := json.Marshal(groupSnapshots)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		OrderID:       aggregate.ID().String(),
		ClientDetails: clientJSON,
		CartItems:     itemsJSON,
		TotalCost:     aggregate.TotalCost(),
		VendorDetails: groupsJSON,
		OrderDate:     aggregate.OrderDate(),
	}, nil
}

// toDomain converts a database row back into an order aggregate,
// reconstructing the snapshots in stored order via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var clientDetails order.ClientDetails
	if err = json.Unmarshal(dto.ClientDetails, &clientDetails); err != nil {
		return nil, err
	}

	var itemSnapshots []cartItemSnapshot
	if err = json.Unmarshal(dto.CartItems, &itemSnapshots); err != nil {
		return nil, err
	}
	items := make([]order.CartLine, 0, len(itemSnapshots))
	for _, snapshot := range itemSnapshots {
		line, lineErr := order.NewCartLine(
			snapshot.Slug,
			snapshot.ProductName,
			snapshot.ProductPrice,
			snapshot.DiscountedPrice,
			snapshot.Quantity,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, line)
	}

	var groupSnapshots []vendorGroupSnapshot
	if err = json.Unmarshal(dto.VendorDetails, &groupSnapshots); err != nil {
		return nil, err
	}
	groups := make([]order.VendorGroup, 0, len(groupSnapshots))
	for _, snapshot := range groupSnapshots {
		group, groupErr := order.NewVendorGroup(
			snapshot.StoreID,
			snapshot.StoreName,
			snapshot.ProductName,
			snapshot.VendorEmail,
		)
		if groupErr != nil {
			return nil, groupErr
		}
		groups = append(groups, group)
	}

	return order.RestoreOrder(id, clientDetails, items, dto.TotalCost, groups, dto.OrderDate)
}
