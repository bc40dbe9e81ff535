package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopswift/shopswift-api/internal/api/handler/v1/request"
	"github.com/shopswift/shopswift-api/internal/api/handler/v1/response"
	"github.com/shopswift/shopswift-api/internal/domain"
	"github.com/shopswift/shopswift-api/internal/estimator"
	"github.com/shopswift/shopswift-api/internal/service"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, customerID string, cart []domain.CartItem, customerAddress, fallbackEstimate string) (service.PlaceOrderResult, error)
	OrdersForCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	OrdersForShop(ctx context.Context, shopID string) ([]domain.Order, error)
	GetDeliveryEstimate(ctx context.Context, shopID, customerAddress string, orderTotal float64) (estimator.Output, error)
}

type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		svc: svc,
	}
}

// HandlePlaceOrder godoc
// @Summary      Place an order from a cart
// @Description  The cart may span multiple shops; each shop's lines become one order. Validation failures come back as a structured result, not an error.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      request.PlaceOrderRequest true "checkout payload"
// @Success      201      {object}  service.PlaceOrderResult
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  service.PlaceOrderResult
// @Failure      500      {object}  response.Err
// @Router       /orders [post]
func (h *OrderHandler) HandlePlaceOrder(ctx *gin.Context) {
	var req request.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.PlaceOrder(ctx.Request.Context(), req.CustomerID, req.DomainCart(), req.CustomerAddress, req.DeliveryEstimate)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("customer", "customerID", req.CustomerID))

			return
		}

		err = fmt.Errorf("v1.HandlePlaceOrder -> h.svc.PlaceOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if !result.Success {
		ctx.JSON(http.StatusConflict, result)

		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// HandleCustomerOrders godoc
// @Summary      List a customer's orders, newest first
// @Tags         orders
// @Produce      json
// @Param        customerID  path      string  true  "customer ID"
// @Success      200         {array}   domain.Order
// @Failure      500         {object}  response.Err
// @Router       /customers/{customerID}/orders [get]
func (h *OrderHandler) HandleCustomerOrders(ctx *gin.Context) {
	customerID := ctx.Param("customerID")

	orders, err := h.svc.OrdersForCustomer(ctx.Request.Context(), customerID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCustomerOrders -> h.svc.OrdersForCustomer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleShopOrders godoc
// @Summary      List a shop's sales, newest first
// @Tags         orders
// @Produce      json
// @Param        shopID  path      string  true  "shop ID"
// @Success      200     {array}   domain.Order
// @Failure      500     {object}  response.Err
// @Router       /shops/{shopID}/orders [get]
func (h *OrderHandler) HandleShopOrders(ctx *gin.Context) {
	shopID := ctx.Param("shopID")

	orders, err := h.svc.OrdersForShop(ctx.Request.Context(), shopID)
	if err != nil {
		err = fmt.Errorf("v1.HandleShopOrders -> h.svc.OrdersForShop -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleDeliveryEstimate godoc
// @Summary      Get a standalone delivery estimate for a shop
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      request.DeliveryEstimateRequest true "estimate input"
// @Success      200      {object}  response.DeliveryEstimateResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /delivery-estimate [post]
func (h *OrderHandler) HandleDeliveryEstimate(ctx *gin.Context) {
	var req request.DeliveryEstimateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	out, err := h.svc.GetDeliveryEstimate(ctx.Request.Context(), req.ShopID, req.CustomerAddress, req.OrderTotal)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("shop", "shopID", req.ShopID))

			return
		}

		err = fmt.Errorf("v1.HandleDeliveryEstimate -> h.svc.GetDeliveryEstimate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.DeliveryEstimateResponse{
		Estimate:   out.EstimatedTime,
		Confidence: out.Confidence,
	})
}
