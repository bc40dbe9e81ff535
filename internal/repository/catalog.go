package repository

import (
	"context"
	"fmt"

	"github.com/shopswift/shopswift-api/internal/domain"
	"github.com/shopswift/shopswift-api/internal/repository/store"
)

var (
	ErrItemNotFound  = store.ErrItemNotFound
	ErrShopNotFound  = store.ErrShopNotFound
	ErrNegativeStock = store.ErrNegativeStock
)

// CatalogStore is the slice of the in-memory store the catalog repository
// needs. The store serializes every call behind its mutex.
type CatalogStore interface {
	ListShops() []domain.Shop
	FindShopByID(id string) (domain.Shop, error)
	ListItems() []domain.Item
	ItemsForShop(shopID string) []domain.Item
	FindItem(itemID string) (domain.Item, error)
	AdjustStock(itemID string, delta int) error
	CreateItem(item domain.Item) domain.Item
	UpdateItem(item domain.Item) (domain.Item, error)
	DeleteItem(itemID string)
}

type CatalogRepository struct {
	store CatalogStore
}

func NewCatalogRepository(store CatalogStore) *CatalogRepository {
	return &CatalogRepository{
		store: store,
	}
}

func (r *CatalogRepository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	return r.store.ListShops(), nil
}

func (r *CatalogRepository) FindShop(ctx context.Context, shopID string) (domain.Shop, error) {
	shop, err := r.store.FindShopByID(shopID)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("r.store.FindShopByID -> %w", err)
	}

	return shop, nil
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	return r.store.ListItems(), nil
}

func (r *CatalogRepository) ItemsForShop(ctx context.Context, shopID string) ([]domain.Item, error) {
	return r.store.ItemsForShop(shopID), nil
}

func (r *CatalogRepository) FindItem(ctx context.Context, itemID string) (domain.Item, error) {
	item, err := r.store.FindItem(itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.store.FindItem -> %w", err)
	}

	return item, nil
}

func (r *CatalogRepository) AdjustStock(ctx context.Context, itemID string, delta int) error {
	if err := r.store.AdjustStock(itemID, delta); err != nil {
		return fmt.Errorf("r.store.AdjustStock -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	return r.store.CreateItem(item), nil
}

func (r *CatalogRepository) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.store.UpdateItem(item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.store.UpdateItem -> %w", err)
	}

	return updated, nil
}

func (r *CatalogRepository) DeleteItem(ctx context.Context, itemID string) error {
	r.store.DeleteItem(itemID)

	return nil
}
