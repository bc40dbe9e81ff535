package domain

// CartItem is one line of a shopping cart. Quantity is kept within
// [1, item.Stock] by the storefront, but stock is only re-checked
// authoritatively when the order is placed.
type CartItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}
