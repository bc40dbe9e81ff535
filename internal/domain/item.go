package domain

// Item is a single product listed by a shop. IDs are formatted
// "{shopID}_{serial}" where the serial is a zero-padded per-shop sequence.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Unit        string  `json:"unit"`
	ImageURL    string  `json:"image_url"`
	ImageHint   string  `json:"image_hint,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ShopID      string  `json:"shop_id"`
}
