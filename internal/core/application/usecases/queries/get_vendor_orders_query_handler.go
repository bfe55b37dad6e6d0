package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetVendorOrdersQueryResponse is one order as seen by a vendor: the stored
// snapshots decoded, newest orders first.
type GetVendorOrdersQueryResponse struct {
	OrderID       string              `json:"orderId"`
	ClientDetails ClientDetailsView   `json:"clientDetails"`
	CartItems     []CartItemView      `json:"cartItems"`
	VendorDetails []VendorDetailsView `json:"vendorDetails"`
	TotalCost     decimal.Decimal     `json:"totalCost"`
	OrderDate     time.Time           `json:"orderDate"`
}

// ClientDetailsView is the decoded client snapshot.
type ClientDetailsView struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

// CartItemView is one decoded cart line snapshot.
type CartItemView struct {
	Slug            string           `json:"slug"`
	ProductName     string           `json:"productName"`
	ProductPrice    decimal.Decimal  `json:"productPrice"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
	Quantity        int              `json:"quantity"`
}

// VendorDetailsView is one decoded vendor group snapshot. The persisted field
// casing is part of the stored contract and is preserved here.
type VendorDetailsView struct {
	StoreID     string `json:"store_id"`
	StoreName   string `json:"store_name"`
	ProductName string `json:"productName"`
	VendorEmail string `json:"VendorEmail"`
}

// GetVendorOrdersQueryHandler lists orders containing a given store's items.
// Matches on the persisted vendor details snapshot with a JSONB containment
// filter, so no extra join table is needed.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order queries.
// Requires a GORM database connection for query execution.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the store's orders, newest first.
// An order appears once no matter how many of its lines belong to the store.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]GetVendorOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, err := json.Marshal([]map[string]string{{"store_id": query.StoreID()}})
	if err != nil {
		return nil, err
	}

	orders := make([]GetVendorOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			client_details,
			cart_items,
			vendor_details,
			total_cost,
			order_date
		FROM orders
		WHERE vendor_details @> ?::jsonb
		ORDER BY order_date DESC, order_id
	`, string(filter)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetVendorOrdersQueryResponse
		var clientJSON, cartJSON, vendorJSON []byte

		err = rows.Scan(
			&orderResp.OrderID,
			&clientJSON,
			&cartJSON,
			&vendorJSON,
			&orderResp.TotalCost,
			&orderResp.OrderDate,
		)
		if err != nil {
			return nil, err
		}

		if err = json.Unmarshal(clientJSON, &orderResp.ClientDetails); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(cartJSON, &orderResp.CartItems); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(vendorJSON, &orderResp.VendorDetails); err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
