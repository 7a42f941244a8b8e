package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/storelab/commerce-api/internal/logging"
	"github.com/storelab/commerce-api/internal/service"
	"github.com/storelab/commerce-api/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	items, err := h.Svc.GetCart(ctx)
	if err != nil {
		return failFromError(c, l, "get_cart", err)
	}

	l.Info("get_cart_success", "items", len(items))
	return transport.OK(c, http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddToCart(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return failFromError(c, l, "add_to_cart", err)
	}

	l.Info("add_to_cart_success", "product_id", req.ProductID, "quantity", item.Quantity)
	return transport.OK(c, http.StatusCreated, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart_item")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "id is not a valid uuid")
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "invalid body", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateCartItem(ctx, id, req.Quantity)
	if err != nil {
		return failFromError(c, l, "update_cart_item", err)
	}

	l.Info("update_cart_item_success", "id", id, "quantity", item.Quantity)
	return transport.OK(c, http.StatusOK, item)
}

func (h *CartHTTP) RemoveCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_cart_item")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("remove_cart_item_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "id is not a valid uuid")
	}

	if err := h.Svc.RemoveCartItem(ctx, id); err != nil {
		return failFromError(c, l, "remove_cart_item", err)
	}

	l.Info("remove_cart_item_success", "id", id)
	return transport.OKMessage(c, http.StatusOK, nil, "cart item removed")
}
