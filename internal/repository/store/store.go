package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shopswift/shopswift-api/internal/domain"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrShopNotFound = errors.New("shop not found")
	ErrUserNotFound = errors.New("user not found")

	// ErrNegativeStock guards AdjustStock against a delta the caller
	// should have validated first.
	ErrNegativeStock = errors.New("stock adjustment below zero")
)

// Store holds every collection of the storefront in process memory.
// All access goes through the mutex; there is no other writer.
type Store struct {
	mu     sync.RWMutex
	users  []domain.User
	shops  []domain.Shop
	items  []domain.Item
	orders []domain.Order
}

// New returns an empty store. Most callers want NewSeeded.
func New() *Store {
	return &Store{}
}

func (s *Store) FindUserByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}

func (s *Store) FindUserByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}

func (s *Store) ListShops() []domain.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shops := make([]domain.Shop, len(s.shops))
	copy(shops, s.shops)

	return shops
}

func (s *Store) FindShopByID(id string) (domain.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, shop := range s.shops {
		if shop.ID == id {
			return shop, nil
		}
	}

	return domain.Shop{}, ErrShopNotFound
}

func (s *Store) ListItems() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, len(s.items))
	copy(items, s.items)

	return items
}

func (s *Store) ItemsForShop(shopID string) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []domain.Item
	for _, item := range s.items {
		if item.ShopID == shopID {
			items = append(items, item)
		}
	}

	return items
}

func (s *Store) FindItem(itemID string) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == itemID {
			return item, nil
		}
	}

	return domain.Item{}, ErrItemNotFound
}

// AdjustStock adds delta (usually negative) to the item's stock count.
// The resulting stock must stay non-negative; callers validate availability
// before decrementing.
func (s *Store) AdjustStock(itemID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}
		if s.items[i].Stock+delta < 0 {
			return ErrNegativeStock
		}
		s.items[i].Stock += delta

		return nil
	}

	return ErrItemNotFound
}

// CreateItem assigns the next per-shop serial identifier and prepends the
// item so newly created items list first, as the storefront expects.
func (s *Store) CreateItem(item domain.Item) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = fmt.Sprintf("%s_%03d", item.ShopID, s.maxSerialLocked(item.ShopID)+1)
	s.items = append([]domain.Item{item}, s.items...)

	return item
}

// maxSerialLocked scans the shop's items for the highest numeric suffix.
// IDs that do not parse as "{shopID}_{serial}" are skipped.
func (s *Store) maxSerialLocked(shopID string) int {
	max := 0
	prefix := shopID + "_"
	for _, item := range s.items {
		if item.ShopID != shopID || !strings.HasPrefix(item.ID, prefix) {
			continue
		}
		serial, err := strconv.Atoi(strings.TrimPrefix(item.ID, prefix))
		if err != nil {
			continue
		}
		if serial > max {
			max = serial
		}
	}

	return max
}

// UpdateItem replaces the stored item's fields, preserving its identifier.
func (s *Store) UpdateItem(item domain.Item) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item

			return item, nil
		}
	}

	return domain.Item{}, ErrItemNotFound
}

// DeleteItem removes the item if present and is a no-op otherwise.
func (s *Store) DeleteItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)

			return
		}
	}
}

func (s *Store) AppendOrder(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
}

func (s *Store) OrdersForCustomer(customerID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []domain.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}

	return orders
}

func (s *Store) OrdersForShop(shopID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []domain.Order
	for _, o := range s.orders {
		if o.ShopID == shopID {
			orders = append(orders, o)
		}
	}

	return orders
}
