package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest is the public checkout request body.
type CheckoutRequest struct {
	ClientDetails ClientDetailsDTO `json:"clientDetails" validate:"required"`
	CartItems     []CartItemDTO    `json:"cartItems" validate:"required,min=1,dive"`
	TotalCost     decimal.Decimal  `json:"totalCost"`
}

// ClientDetailsDTO carries the customer's contact and delivery details.
type ClientDetailsDTO struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"omitempty"`
	Country    string `json:"country" validate:"required"`
}

// CartItemDTO is one cart line as submitted by the client.
type CartItemDTO struct {
	Slug            string           `json:"slug" validate:"required"`
	ProductName     string           `json:"productName" validate:"required"`
	ProductPrice    decimal.Decimal  `json:"productPrice"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice" validate:"omitempty"`
	Quantity        int              `json:"quantity" validate:"required,min=1"`
}

// CheckoutResponse is returned on a successful checkout.
type CheckoutResponse struct {
	Message     string         `json:"message"`
	OrderResult OrderResultDTO `json:"orderResult"`
}

// OrderResultDTO is the persistence outcome exposed to the client.
type OrderResultDTO struct {
	OrderID   string          `json:"orderId"`
	TotalCost decimal.Decimal `json:"totalCost"`
	OrderDate time.Time       `json:"orderDate"`
}

// ErrorResponse wraps an error payload. Message is a single string for most
// failures and an array of strings for request validation failures.
type ErrorResponse struct {
	Message any `json:"message"`
}
