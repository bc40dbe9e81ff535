package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopswift/shopswift-api/internal/repository"
	"github.com/shopswift/shopswift-api/internal/repository/store"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()

	st, err := store.NewSeeded()
	require.NoError(t, err)

	return NewCatalogService(repository.NewCatalogRepository(st))
}

func TestSaveItem_Create(t *testing.T) {
	svc := newCatalogService(t)

	created, err := svc.SaveItem(context.Background(), SaveItemParams{
		Name:     "Paneer",
		Unit:     "kg",
		Price:    320.00,
		Stock:    15,
		ImageURL: "https://picsum.photos/seed/paneer/400/400",
		ShopID:   "shop-1",
	})

	require.NoError(t, err)
	// The seed catalog ends at serial 012.
	assert.Equal(t, "shop-1_013", created.ID)
	assert.Equal(t, "Paneer", created.Name)

	items, err := svc.ItemsForShop(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Len(t, items, 13)
}

func TestSaveItem_CreateAllowsZeroPriceAndStock(t *testing.T) {
	svc := newCatalogService(t)

	created, err := svc.SaveItem(context.Background(), SaveItemParams{
		Name:     "Free Sample",
		Unit:     "pack",
		Price:    0,
		Stock:    0,
		ImageURL: "https://picsum.photos/seed/sample/400/400",
		ShopID:   "shop-2",
	})

	require.NoError(t, err)
	assert.Zero(t, created.Price)
	assert.Zero(t, created.Stock)
}

func TestSaveItem_Update(t *testing.T) {
	svc := newCatalogService(t)

	updated, err := svc.SaveItem(context.Background(), SaveItemParams{
		ID:       "shop-1_001",
		Name:     "Green Apples",
		Unit:     "kg",
		Price:    140.00,
		Stock:    25,
		ImageURL: "https://picsum.photos/seed/green/400/400",
		ShopID:   "shop-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "shop-1_001", updated.ID)
	assert.Equal(t, "shop-1", updated.ShopID)

	item, err := svc.GetItem(context.Background(), "shop-1_001")
	require.NoError(t, err)
	assert.Equal(t, "Green Apples", item.Name)
	assert.Equal(t, 140.00, item.Price)
	assert.Equal(t, 25, item.Stock)
}

func TestSaveItem_UpdateUnknownItem(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.SaveItem(context.Background(), SaveItemParams{
		ID:       "shop-1_999",
		Name:     "Ghost Item",
		Unit:     "kg",
		ImageURL: "https://picsum.photos/seed/ghost/400/400",
		ShopID:   "shop-1",
	})

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteItem(t *testing.T) {
	svc := newCatalogService(t)

	err := svc.DeleteItem(context.Background(), "shop-1_001")
	require.NoError(t, err)

	_, err = svc.GetItem(context.Background(), "shop-1_001")
	assert.ErrorIs(t, err, ErrItemNotFound)

	// Deleting again is still fine.
	err = svc.DeleteItem(context.Background(), "shop-1_001")
	assert.NoError(t, err)
}

func TestGetShop_Unknown(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetShop(context.Background(), "shop-99")

	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestItemsForShop_OnlyThatShop(t *testing.T) {
	svc := newCatalogService(t)

	items, err := svc.ItemsForShop(context.Background(), "shop-3")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "shop-3", item.ShopID)
	}
}
