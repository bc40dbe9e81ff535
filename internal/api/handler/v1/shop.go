package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopswift/shopswift-api/internal/api/handler/v1/response"
	"github.com/shopswift/shopswift-api/internal/service"
)

// HandleListShops godoc
// @Summary      List all shops
// @Tags         shops
// @Produce      json
// @Success      200  {array}   domain.Shop
// @Failure      500  {object}  response.Err
// @Router       /shops [get]
func (h *CatalogHandler) HandleListShops(ctx *gin.Context) {
	shops, err := h.svc.ListShops(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListShops -> h.svc.ListShops -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, shops)
}

// HandleShopItems godoc
// @Summary      List one shop's items
// @Tags         shops
// @Produce      json
// @Param        shopID  path      string  true  "shop ID"
// @Success      200     {array}   domain.Item
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /shops/{shopID}/items [get]
func (h *CatalogHandler) HandleShopItems(ctx *gin.Context) {
	shopID := ctx.Param("shopID")

	if _, err := h.svc.GetShop(ctx.Request.Context(), shopID); err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("shop", "shopID", shopID))

			return
		}

		err = fmt.Errorf("v1.HandleShopItems -> h.svc.GetShop -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	items, err := h.svc.ItemsForShop(ctx.Request.Context(), shopID)
	if err != nil {
		err = fmt.Errorf("v1.HandleShopItems -> h.svc.ItemsForShop -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}
