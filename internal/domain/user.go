package domain

type UserRole string

const (
	RoleCustomer  UserRole = "CUSTOMER"
	RoleShopOwner UserRole = "SHOP_OWNER"
)

type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Role     UserRole `json:"role"`

	// ShopID is set for shop owners only.
	ShopID string `json:"shop_id,omitempty"`

	// Address and coordinates are set for customers with a stored
	// delivery location. Lat/Lng are nil when unknown.
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// HasCoordinates reports whether the user carries a stored delivery location.
func (u User) HasCoordinates() bool {
	return u.Lat != nil && u.Lng != nil
}
