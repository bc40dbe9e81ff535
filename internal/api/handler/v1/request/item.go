package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// SaveItemRequest carries the owner-side item form. An empty ID creates a
// new item; a set ID updates the existing one. OwnerID is only used for
// post-action navigation by the storefront, never for authorization.
type SaveItemRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
	ImageHint   string  `json:"image_hint"`
	ShopID      string  `json:"shop_id"`
	OwnerID     string  `json:"owner_id"`
}

// Validate returns per-field messages; nothing is mutated when it fails.
func (req *SaveItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(3, 100)),
		validation.Field(&req.Unit, validation.Required),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Stock, validation.Min(0)),
		validation.Field(&req.ImageURL, validation.Required, is.URL),
		validation.Field(&req.ShopID, validation.Required),
	)
}

type DeleteItemRequest struct {
	ItemID  string `json:"item_id"`
	OwnerID string `json:"owner_id"`
}

func (req *DeleteItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required),
	)
}
