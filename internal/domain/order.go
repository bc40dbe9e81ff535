package domain

import "time"

// ShippingFee is the flat per-shop delivery charge added to every order.
const ShippingFee = 5.00

// OrderLine captures an ordered item with its unit price at purchase time,
// so later catalog edits do not rewrite order history.
type OrderLine struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is one shop's share of a checkout. A cart spanning N shops produces
// N orders. Orders are never mutated or deleted once created.
type Order struct {
	ID                    string      `json:"id"`
	CustomerID            string      `json:"customer_id"`
	ShopID                string      `json:"shop_id"`
	Items                 []OrderLine `json:"items"`
	TotalPrice            float64     `json:"total_price"`
	OrderDate             time.Time   `json:"order_date"`
	EstimatedDeliveryTime string      `json:"estimated_delivery_time"`
	CustomerAddress       string      `json:"customer_address"`
}
