package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopswift/shopswift-api/internal/domain"
	"github.com/shopswift/shopswift-api/internal/estimator"
	"github.com/shopswift/shopswift-api/internal/pkg/geo"
	"github.com/shopswift/shopswift-api/internal/repository"
)

var (
	ErrItemNotFound = repository.ErrItemNotFound
	ErrShopNotFound = repository.ErrShopNotFound
)

// DefaultFallbackEstimate is used when neither coordinates nor a
// caller-supplied estimate are available.
const DefaultFallbackEstimate = "30-45 mins"

// PlaceOrderResult is returned instead of an error for the expected failure
// modes of checkout, so the storefront can show the message without
// unwinding.
type PlaceOrderResult struct {
	Success      bool   `json:"success"`
	OrderIDs     string `json:"order_ids,omitempty"`
	RedirectPath string `json:"redirect_path,omitempty"`
	Error        string `json:"error,omitempty"`
}

type OrderCatalogRepository interface {
	FindItem(ctx context.Context, itemID string) (domain.Item, error)
	AdjustStock(ctx context.Context, itemID string, delta int) error
	FindShop(ctx context.Context, shopID string) (domain.Shop, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	FindByShop(ctx context.Context, shopID string) ([]domain.Order, error)
}

type OrderUserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type OrderService struct {
	catalogRepo OrderCatalogRepository
	orderRepo   OrderRepository
	userRepo    OrderUserRepository

	// estimator is the external delivery-time collaborator; nil disables
	// the remote call and goes straight to the local formula.
	estimator estimator.Client

	now func() time.Time
}

func NewOrderService(catalogRepo OrderCatalogRepository, orderRepo OrderRepository, userRepo OrderUserRepository, est estimator.Client) *OrderService {
	return &OrderService{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		estimator:   est,
		now:         time.Now,
	}
}

// shopGroup is the subset of a cart belonging to one shop, processed as one
// order. Lines keep cart order; groups keep first-occurrence order.
type shopGroup struct {
	shopID string
	lines  []domain.CartItem
}

// PlaceOrder runs the checkout workflow: partition the cart per shop, then
// for each shop validate stock, decrement it, resolve a delivery estimate
// and record the order. Shop groups commit independently; the first failing
// group stops processing, and groups committed before it stay committed.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID string, cart []domain.CartItem, customerAddress, fallbackEstimate string) (PlaceOrderResult, error) {
	if len(cart) == 0 {
		return PlaceOrderResult{Success: false, Error: "Cart is empty."}, nil
	}

	customer, err := s.userRepo.FindByID(ctx, customerID)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	groups := s.partitionCart(ctx, cart)

	var orderIDs []string
	for _, group := range groups {
		// Validation pass: re-fetch current stock for every line before
		// touching anything in this group.
		items := make([]domain.Item, len(group.lines))
		for i, line := range group.lines {
			item, err := s.catalogRepo.FindItem(ctx, line.ItemID)
			if err != nil || item.Stock < line.Quantity {
				label := line.ItemID
				if err == nil {
					label = item.Name
				}

				return PlaceOrderResult{
					Success: false,
					Error:   fmt.Sprintf("Sorry, %q is out of stock or has limited quantity.", label),
				}, nil
			}
			items[i] = item
		}

		// Decrement pass.
		for i, line := range group.lines {
			if err := s.catalogRepo.AdjustStock(ctx, line.ItemID, -line.Quantity); err != nil {
				return PlaceOrderResult{}, fmt.Errorf("s.catalogRepo.AdjustStock(%q) -> %w", items[i].ID, err)
			}
		}

		lines := make([]domain.OrderLine, len(group.lines))
		subtotal := 0.0
		for i, line := range group.lines {
			lines[i] = domain.OrderLine{
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				Price:    items[i].Price,
			}
			subtotal += items[i].Price * float64(line.Quantity)
		}
		total := subtotal + domain.ShippingFee

		estimate, err := s.resolveEstimate(ctx, customer, group.shopID, total, fallbackEstimate)
		if err != nil {
			return PlaceOrderResult{}, fmt.Errorf("s.resolveEstimate -> %w", err)
		}

		order := domain.Order{
			ID:                    fmt.Sprintf("order-%s-%d", group.shopID, s.now().UnixMilli()),
			CustomerID:            customerID,
			ShopID:                group.shopID,
			Items:                 lines,
			TotalPrice:            total,
			OrderDate:             s.now(),
			EstimatedDeliveryTime: estimate,
			CustomerAddress:       customerAddress,
		}

		created, err := s.orderRepo.Create(ctx, order)
		if err != nil {
			return PlaceOrderResult{}, fmt.Errorf("s.orderRepo.Create -> %w", err)
		}
		orderIDs = append(orderIDs, created.ID)
	}

	return PlaceOrderResult{
		Success:      true,
		OrderIDs:     strings.Join(orderIDs, ","),
		RedirectPath: "/customer/" + customerID,
	}, nil
}

// partitionCart groups cart lines by their item's shop. Items the catalog no
// longer knows fall back to the shop prefix embedded in their identifier, so
// the group still exists and fails validation with a message naming them.
func (s *OrderService) partitionCart(ctx context.Context, cart []domain.CartItem) []shopGroup {
	var groups []shopGroup
	index := make(map[string]int)

	for _, line := range cart {
		shopID := shopIDForItem(ctx, s.catalogRepo, line.ItemID)
		i, ok := index[shopID]
		if !ok {
			i = len(groups)
			index[shopID] = i
			groups = append(groups, shopGroup{shopID: shopID})
		}
		groups[i].lines = append(groups[i].lines, line)
	}

	return groups
}

func shopIDForItem(ctx context.Context, repo OrderCatalogRepository, itemID string) string {
	if item, err := repo.FindItem(ctx, itemID); err == nil {
		return item.ShopID
	}
	// Item identifiers are "{shopID}_{serial}".
	if i := strings.LastIndex(itemID, "_"); i > 0 {
		return itemID[:i]
	}

	return itemID
}

// resolveEstimate picks the delivery estimate for one shop group: the remote
// estimator when configured, then the distance formula when both sides have
// coordinates, then the caller's fallback string, then the default.
func (s *OrderService) resolveEstimate(ctx context.Context, customer domain.User, shopID string, orderTotal float64, fallbackEstimate string) (string, error) {
	shop, err := s.catalogRepo.FindShop(ctx, shopID)
	if err != nil {
		return "", fmt.Errorf("s.catalogRepo.FindShop -> %w", err)
	}

	if s.estimator != nil {
		customerLocation := customer.Address
		if customer.HasCoordinates() {
			customerLocation = fmt.Sprintf("%f,%f", *customer.Lat, *customer.Lng)
		}
		out, err := s.estimator.Estimate(ctx, estimator.Input{
			CustomerLocation: customerLocation,
			ShopLocation:     shop.Address,
			OrderTotal:       orderTotal,
			TimeOfDay:        s.now().Format("3:04 PM"),
		})
		if err == nil {
			return out.EstimatedTime, nil
		}
		// Estimator failures are recovered locally, never surfaced.
		zap.L().Warn("delivery estimator unavailable, using local formula", zap.Error(err))
	}

	if customer.HasCoordinates() {
		distanceKm := geo.HaversineKm(*customer.Lat, *customer.Lng, shop.Lat, shop.Lng)
		t := int(math.Round(distanceKm*2.5 + 15))

		return fmt.Sprintf("%d-%d minutes", t, t+10), nil
	}

	if fallbackEstimate != "" {
		return fallbackEstimate, nil
	}

	return DefaultFallbackEstimate, nil
}

// OrdersForCustomer returns the customer's order history, newest first.
func (s *OrderService) OrdersForCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("s.orderRepo.FindByCustomer -> %w", err)
	}

	return orders, nil
}

// OrdersForShop returns the shop's sales, newest first.
func (s *OrderService) OrdersForShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("s.orderRepo.FindByShop -> %w", err)
	}

	return orders, nil
}

// GetDeliveryEstimate is the standalone estimate entry point kept from the
// storefront. It consults the remote estimator and falls back to a fixed
// local window when the collaborator is unavailable.
func (s *OrderService) GetDeliveryEstimate(ctx context.Context, shopID, customerAddress string, orderTotal float64) (estimator.Output, error) {
	shop, err := s.catalogRepo.FindShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			return estimator.Output{}, ErrShopNotFound
		}

		return estimator.Output{}, fmt.Errorf("s.catalogRepo.FindShop -> %w", err)
	}

	client := s.estimator
	if client == nil {
		client = estimator.Stub{}
	}

	out, err := client.Estimate(ctx, estimator.Input{
		CustomerLocation: customerAddress,
		ShopLocation:     shop.Address,
		OrderTotal:       orderTotal,
		TimeOfDay:        s.now().Format("3:04 PM"),
	})
	if err != nil {
		zap.L().Warn("delivery estimator unavailable, using fallback window", zap.Error(err))
		// Assume a mid-range trip when nothing better is known.
		t := int(math.Round(12*2.5 + 15))

		return estimator.Output{
			EstimatedTime: fmt.Sprintf("%d-%d minutes (fallback)", t, t+10),
			Confidence:    0.2,
		}, nil
	}

	return out, nil
}
