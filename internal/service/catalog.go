package service

import (
	"context"
	"fmt"

	"github.com/shopswift/shopswift-api/internal/domain"
)

type CatalogRepository interface {
	ListShops(ctx context.Context) ([]domain.Shop, error)
	FindShop(ctx context.Context, shopID string) (domain.Shop, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	ItemsForShop(ctx context.Context, shopID string) ([]domain.Item, error)
	FindItem(ctx context.Context, itemID string) (domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// SaveItemParams is the flat field set of the owner-side save operation.
// An empty ID means create; a set ID means update. Fields are validated at
// the API boundary before this service is reached.
type SaveItemParams struct {
	ID          string
	Name        string
	Description string
	Unit        string
	Price       float64
	Stock       int
	ImageURL    string
	ImageHint   string
	ShopID      string
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.repo.ListShops(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListShops -> %w", err)
	}

	return shops, nil
}

func (s *CatalogService) GetShop(ctx context.Context, shopID string) (domain.Shop, error) {
	shop, err := s.repo.FindShop(ctx, shopID)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("s.repo.FindShop -> %w", err)
	}

	return shop, nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListItems -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) ItemsForShop(ctx context.Context, shopID string) ([]domain.Item, error) {
	items, err := s.repo.ItemsForShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ItemsForShop -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) GetItem(ctx context.Context, itemID string) (domain.Item, error) {
	item, err := s.repo.FindItem(ctx, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindItem -> %w", err)
	}

	return item, nil
}

// SaveItem creates or updates an item. Creation assigns the next per-shop
// serial identifier; update replaces the fields of the existing item,
// preserving its identifier and shop.
func (s *CatalogService) SaveItem(ctx context.Context, params SaveItemParams) (domain.Item, error) {
	if params.ID == "" {
		created, err := s.repo.CreateItem(ctx, domain.Item{
			Name:        params.Name,
			Description: params.Description,
			Unit:        params.Unit,
			ImageURL:    params.ImageURL,
			ImageHint:   params.ImageHint,
			Price:       params.Price,
			Stock:       params.Stock,
			ShopID:      params.ShopID,
		})
		if err != nil {
			return domain.Item{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
		}

		return created, nil
	}

	existing, err := s.repo.FindItem(ctx, params.ID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindItem -> %w", err)
	}

	existing.Name = params.Name
	existing.Description = params.Description
	existing.Unit = params.Unit
	existing.ImageURL = params.ImageURL
	existing.ImageHint = params.ImageHint
	existing.Price = params.Price
	existing.Stock = params.Stock

	updated, err := s.repo.UpdateItem(ctx, existing)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.UpdateItem -> %w", err)
	}

	return updated, nil
}

// DeleteItem removes the item unconditionally; deleting an absent item is
// not an error.
func (s *CatalogService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("s.repo.DeleteItem -> %w", err)
	}

	return nil
}
