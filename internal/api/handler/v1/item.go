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
	"github.com/shopswift/shopswift-api/internal/service"
)

type CatalogService interface {
	ListShops(ctx context.Context) ([]domain.Shop, error)
	GetShop(ctx context.Context, shopID string) (domain.Shop, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	ItemsForShop(ctx context.Context, shopID string) ([]domain.Item, error)
	GetItem(ctx context.Context, itemID string) (domain.Item, error)
	SaveItem(ctx context.Context, params service.SaveItemParams) (domain.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List every item across all shops
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      500  {object}  response.Err
// @Router       /items [get]
func (h *CatalogHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetItem godoc
// @Summary      Get one item
// @Tags         items
// @Produce      json
// @Param        itemID  path      string  true  "item ID"
// @Success      200     {object}  domain.Item
// @Failure      404     {object}  response.Err
// @Router       /items/{itemID} [get]
func (h *CatalogHandler) HandleGetItem(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	item, err := h.svc.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "itemID", itemID))

			return
		}

		err = fmt.Errorf("v1.HandleGetItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleSaveItem godoc
// @Summary      Create or update an item
// @Description  An empty id creates the item with the next per-shop serial; a set id updates the existing item.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveItemRequest true "item fields"
// @Success      200      {object}  domain.Item
// @Success      201      {object}  domain.Item
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [post]
func (h *CatalogHandler) HandleSaveItem(ctx *gin.Context) {
	var req request.SaveItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.SaveItem(ctx.Request.Context(), service.SaveItemParams{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		ImageHint:   req.ImageHint,
		ShopID:      req.ShopID,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "itemID", req.ID))

			return
		}

		err = fmt.Errorf("v1.HandleSaveItem -> h.svc.SaveItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	ctx.JSON(status, item)
}

// HandleDeleteItem godoc
// @Summary      Delete an item
// @Description  Removes the item if present; deleting an absent item is a no-op.
// @Tags         items
// @Param        itemID  path  string  true  "item ID"
// @Success      204
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID} [delete]
func (h *CatalogHandler) HandleDeleteItem(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	if err := h.svc.DeleteItem(ctx.Request.Context(), itemID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
