package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/shopswift/shopswift-api/internal/domain"
)

type CartLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest is the checkout payload. An empty cart is accepted here
// and answered by the workflow with a structured failure, matching the
// storefront contract.
type PlaceOrderRequest struct {
	CustomerID       string     `json:"customer_id"`
	Cart             []CartLine `json:"cart"`
	CustomerAddress  string     `json:"customer_address"`
	DeliveryEstimate string     `json:"delivery_estimate"`
}

func (req *PlaceOrderRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CustomerID, validation.Required),
		validation.Field(&req.CustomerAddress, validation.Required),
	)
	if err != nil {
		return err
	}

	for i, line := range req.Cart {
		if line.ItemID == "" {
			return fmt.Errorf("cart[%d]: item_id is required", i)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("cart[%d]: quantity must be at least 1", i)
		}
	}

	return nil
}

// DomainCart converts the payload into domain cart items, preserving order.
func (req *PlaceOrderRequest) DomainCart() []domain.CartItem {
	cart := make([]domain.CartItem, len(req.Cart))
	for i, line := range req.Cart {
		cart[i] = domain.CartItem{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}

	return cart
}

type DeliveryEstimateRequest struct {
	ShopID          string  `json:"shop_id"`
	CustomerAddress string  `json:"customer_address"`
	OrderTotal      float64 `json:"order_total"`
}

func (req *DeliveryEstimateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ShopID, validation.Required),
		validation.Field(&req.CustomerAddress, validation.Required),
		validation.Field(&req.OrderTotal, validation.Min(0.0)),
	)
}
