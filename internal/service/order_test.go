package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopswift/shopswift-api/internal/domain"
	"github.com/shopswift/shopswift-api/internal/estimator"
	"github.com/shopswift/shopswift-api/internal/repository"
	"github.com/shopswift/shopswift-api/internal/repository/store"
)

// fixedEstimator always answers with the same window, or fails when err is
// set, standing in for the remote delivery-time service.
type fixedEstimator struct {
	out  estimator.Output
	err  error
	seen []estimator.Input
}

func (f *fixedEstimator) Estimate(ctx context.Context, input estimator.Input) (estimator.Output, error) {
	f.seen = append(f.seen, input)
	if f.err != nil {
		return estimator.Output{}, f.err
	}

	return f.out, nil
}

func newOrderService(t *testing.T, est estimator.Client) (*OrderService, *store.Store) {
	t.Helper()

	st, err := store.NewSeeded()
	require.NoError(t, err)

	svc := NewOrderService(
		repository.NewCatalogRepository(st),
		repository.NewOrderRepository(st),
		repository.NewUserRepository(st),
		est,
	)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	}

	return svc, st
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	result, err := svc.PlaceOrder(context.Background(), "user-6", nil, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Cart is empty.", result.Error)
}

func TestPlaceOrder_UnknownCustomer(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	cart := []domain.CartItem{{ItemID: "shop-1_001", Quantity: 1}}
	_, err := svc.PlaceOrder(context.Background(), "user-99", cart, "somewhere", "")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPlaceOrder_SingleShop(t *testing.T) {
	svc, st := newOrderService(t, nil)

	cart := []domain.CartItem{
		{ItemID: "shop-1_001", Quantity: 2}, // Red Apples, 120.00, stock 40
		{ItemID: "shop-1_002", Quantity: 1}, // Bananas, 60.00, stock 55
	}
	result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "/customer/user-6", result.RedirectPath)

	fixed := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, fmt.Sprintf("order-shop-1-%d", fixed.UnixMilli()), result.OrderIDs)

	apples, err := st.FindItem("shop-1_001")
	require.NoError(t, err)
	assert.Equal(t, 38, apples.Stock)

	bananas, err := st.FindItem("shop-1_002")
	require.NoError(t, err)
	assert.Equal(t, 54, bananas.Stock)

	orders, err := svc.OrdersForCustomer(context.Background(), "user-6")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, "shop-1", order.ShopID)
	assert.Equal(t, 2*120.00+60.00+domain.ShippingFee, order.TotalPrice)
	assert.Equal(t, "IIITD Okhla Delhi", order.CustomerAddress)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 120.00, order.Items[0].Price)

	// Customer and shop share the seed coordinates, so the distance formula
	// yields the minimum window.
	assert.Equal(t, "15-25 minutes", order.EstimatedDeliveryTime)
}

func TestPlaceOrder_MultiShop(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	cart := []domain.CartItem{
		{ItemID: "shop-1_001", Quantity: 1},
		{ItemID: "shop-2_003", Quantity: 2},
		{ItemID: "shop-1_002", Quantity: 1},
	}
	result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	fixed := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	expected := fmt.Sprintf("order-shop-1-%d,order-shop-2-%d", fixed.UnixMilli(), fixed.UnixMilli())
	assert.Equal(t, expected, result.OrderIDs)

	shop1, err := svc.OrdersForShop(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, shop1, 1)
	assert.Len(t, shop1[0].Items, 2)

	shop2, err := svc.OrdersForShop(context.Background(), "shop-2")
	require.NoError(t, err)
	require.Len(t, shop2, 1)
	assert.Len(t, shop2[0].Items, 1)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	svc, st := newOrderService(t, nil)
	require.NoError(t, st.AdjustStock("shop-1_001", -39)) // stock 40 -> 1

	cart := []domain.CartItem{{ItemID: "shop-1_001", Quantity: 2}}
	result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, `Sorry, "Red Apples #1" is out of stock or has limited quantity.`, result.Error)

	item, err := st.FindItem("shop-1_001")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Stock)

	orders, err := svc.OrdersForCustomer(context.Background(), "user-6")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrder_UnknownItem(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	cart := []domain.CartItem{{ItemID: "shop-9_001", Quantity: 1}}
	result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, `Sorry, "shop-9_001" is out of stock or has limited quantity.`, result.Error)
}

func TestPlaceOrder_EarlierShopsStayCommitted(t *testing.T) {
	svc, st := newOrderService(t, nil)
	require.NoError(t, st.AdjustStock("shop-2_001", -39)) // stock 40 -> 1

	cart := []domain.CartItem{
		{ItemID: "shop-1_001", Quantity: 1},
		{ItemID: "shop-2_001", Quantity: 5},
	}
	result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	assert.False(t, result.Success)

	// The first shop's group was already committed when the second failed.
	item, err := st.FindItem("shop-1_001")
	require.NoError(t, err)
	assert.Equal(t, 39, item.Stock)

	orders, err := svc.OrdersForShop(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestPlaceOrder_FallbackEstimate(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	// user-8 has no stored coordinates.
	cart := []domain.CartItem{{ItemID: "shop-1_001", Quantity: 1}}
	result, err := svc.PlaceOrder(context.Background(), "user-8", cart, "Connaught Place", "20-30 minutes")

	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	orders, err := svc.OrdersForCustomer(context.Background(), "user-8")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "20-30 minutes", orders[0].EstimatedDeliveryTime)
}

func TestPlaceOrder_DefaultFallbackEstimate(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	cart := []domain.CartItem{{ItemID: "shop-1_001", Quantity: 1}}
	result, err := svc.PlaceOrder(context.Background(), "user-8", cart, "Connaught Place", "")

	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	orders, err := svc.OrdersForCustomer(context.Background(), "user-8")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, DefaultFallbackEstimate, orders[0].EstimatedDeliveryTime)
}

func TestPlaceOrder_RemoteEstimator(t *testing.T) {
	est := &fixedEstimator{out: estimator.Output{EstimatedTime: "22-32 minutes", Confidence: 0.9}}
	svc, _ := newOrderService(t, est)

	cart := []domain.CartItem{{ItemID: "shop-1_001", Quantity: 1}}
	result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	orders, err := svc.OrdersForCustomer(context.Background(), "user-6")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "22-32 minutes", orders[0].EstimatedDeliveryTime)

	require.Len(t, est.seen, 1)
	assert.Equal(t, "28.545900,77.273100", est.seen[0].CustomerLocation)
	assert.Equal(t, "2:30 PM", est.seen[0].TimeOfDay)
	assert.Equal(t, 120.00+domain.ShippingFee, est.seen[0].OrderTotal)
}

func TestPlaceOrder_RemoteEstimatorFailureFallsBackToFormula(t *testing.T) {
	est := &fixedEstimator{err: errors.New("connection refused")}
	svc, _ := newOrderService(t, est)

	cart := []domain.CartItem{{ItemID: "shop-1_001", Quantity: 1}}
	result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")

	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	orders, err := svc.OrdersForCustomer(context.Background(), "user-6")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "15-25 minutes", orders[0].EstimatedDeliveryTime)
}

func TestOrdersForCustomer_NewestFirst(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	base := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return ts }

		cart := []domain.CartItem{{ItemID: "shop-1_001", Quantity: 1}}
		result, err := svc.PlaceOrder(context.Background(), "user-6", cart, "IIITD Okhla Delhi", "")
		require.NoError(t, err)
		require.True(t, result.Success, result.Error)
	}

	orders, err := svc.OrdersForCustomer(context.Background(), "user-6")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.True(t, orders[0].OrderDate.After(orders[1].OrderDate))
	assert.True(t, orders[1].OrderDate.After(orders[2].OrderDate))

	// Listing again must not change the sequence.
	again, err := svc.OrdersForCustomer(context.Background(), "user-6")
	require.NoError(t, err)
	assert.Equal(t, orders, again)
}

func TestGetDeliveryEstimate_UnknownShop(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	_, err := svc.GetDeliveryEstimate(context.Background(), "shop-99", "somewhere", 100)

	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestGetDeliveryEstimate_StubWhenUnconfigured(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	out, err := svc.GetDeliveryEstimate(context.Background(), "shop-1", "IIITD Okhla Delhi", 200)

	require.NoError(t, err)
	assert.Equal(t, "25-35 minutes", out.EstimatedTime)
	assert.Equal(t, 0.4, out.Confidence)
}

func TestGetDeliveryEstimate_StubLargeOrder(t *testing.T) {
	svc, _ := newOrderService(t, nil)

	out, err := svc.GetDeliveryEstimate(context.Background(), "shop-1", "IIITD Okhla Delhi", 1200)

	require.NoError(t, err)
	assert.Equal(t, "35-45 minutes", out.EstimatedTime)
}

func TestGetDeliveryEstimate_FallbackWindow(t *testing.T) {
	est := &fixedEstimator{err: errors.New("timeout")}
	svc, _ := newOrderService(t, est)

	out, err := svc.GetDeliveryEstimate(context.Background(), "shop-1", "IIITD Okhla Delhi", 200)

	require.NoError(t, err)
	assert.Equal(t, "45-55 minutes (fallback)", out.EstimatedTime)
	assert.Equal(t, 0.2, out.Confidence)
}
