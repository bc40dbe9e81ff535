package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopswift/shopswift-api/internal/domain"
)

// SeedPassword is the single password every seeded account signs in with.
// There is no signup flow; this stands in for real credentials.
const SeedPassword = "123"

type seedProduct struct {
	name  string
	unit  string
	price float64
	stock int
}

// One catalog shared by every shop, serials assigned per shop.
var seedProducts = []seedProduct{
	{"Red Apples", "kg", 120.00, 40},
	{"Bananas", "kg", 60.00, 55},
	{"Oranges", "kg", 90.00, 35},
	{"Potatoes", "kg", 45.00, 80},
	{"Tomatoes", "kg", 55.00, 60},
	{"Onions", "kg", 50.00, 75},
	{"Full Cream Milk", "L", 68.00, 30},
	{"Orange Juice", "L", 150.00, 25},
	{"Sunflower Oil", "L", 210.00, 20},
	{"Farm Eggs", "dozen", 95.00, 45},
	{"Whole Wheat Bread", "pack", 48.00, 25},
	{"Basmati Rice", "kg", 180.00, 50},
}

// NewSeeded builds the store with the fixture data the storefront ships
// with: five shops with their owners, five customers (two of them with a
// stored delivery location), and a per-shop catalog.
func NewSeeded() (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	password := string(hash)

	s := New()

	const (
		seedAddress = "IIITD Okhla Delhi"
		seedLat     = 28.5459
		seedLng     = 77.2731
	)

	for i := 1; i <= 5; i++ {
		shopID := fmt.Sprintf("shop-%d", i)
		ownerID := fmt.Sprintf("user-%d", i)

		s.users = append(s.users, domain.User{
			ID:       ownerID,
			Name:     fmt.Sprintf("Owner %d", i),
			Email:    fmt.Sprintf("shop%d@example.com", i),
			Password: password,
			Role:     domain.RoleShopOwner,
			ShopID:   shopID,
		})
		s.shops = append(s.shops, domain.Shop{
			ID:      shopID,
			Name:    fmt.Sprintf("Shop %d", i),
			OwnerID: ownerID,
			Address: seedAddress,
			Lat:     seedLat,
			Lng:     seedLng,
		})
	}

	for i := 1; i <= 5; i++ {
		customer := domain.User{
			ID:       fmt.Sprintf("user-%d", i+5),
			Name:     fmt.Sprintf("Customer %d", i),
			Email:    fmt.Sprintf("customer%d@example.com", i),
			Password: password,
			Role:     domain.RoleCustomer,
		}
		// Only the first two customers have a stored location.
		if i <= 2 {
			lat, lng := seedLat, seedLng
			customer.Address = seedAddress
			customer.Lat = &lat
			customer.Lng = &lng
		}
		s.users = append(s.users, customer)
	}

	for _, shop := range s.shops {
		for serial, p := range seedProducts {
			s.items = append(s.items, domain.Item{
				ID:          fmt.Sprintf("%s_%03d", shop.ID, serial+1),
				Name:        fmt.Sprintf("%s #%d", p.name, serial+1),
				Description: fmt.Sprintf("High-quality %s from %s.", p.name, shop.Name),
				Unit:        p.unit,
				ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s_%03d/400/400", shop.ID, serial+1),
				ImageHint:   p.name,
				Price:       p.price,
				Stock:       p.stock,
				ShopID:      shop.ID,
			})
		}
	}

	return s, nil
}
