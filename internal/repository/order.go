package repository

import (
	"context"
	"sort"

	"github.com/shopswift/shopswift-api/internal/domain"
)

type OrderStore interface {
	AppendOrder(order domain.Order)
	OrdersForCustomer(customerID string) []domain.Order
	OrdersForShop(shopID string) []domain.Order
}

type OrderRepository struct {
	store OrderStore
}

func NewOrderRepository(store OrderStore) *OrderRepository {
	return &OrderRepository{
		store: store,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.store.AppendOrder(order)

	return order, nil
}

// FindByCustomer returns the customer's orders, newest first. The sort is
// stable so repeated calls return the same sequence.
func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders := r.store.OrdersForCustomer(customerID)
	sortOrdersByDateDesc(orders)

	return orders, nil
}

// FindByShop returns the shop's sales, newest first.
func (r *OrderRepository) FindByShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	orders := r.store.OrdersForShop(shopID)
	sortOrdersByDateDesc(orders)

	return orders, nil
}

func sortOrdersByDateDesc(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
}
