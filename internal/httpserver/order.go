package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/storelab/commerce-api/internal/events"
	"github.com/storelab/commerce-api/internal/logging"
	"github.com/storelab/commerce-api/internal/service"
	"github.com/storelab/commerce-api/internal/transport"
	"github.com/storelab/commerce-api/internal/util"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

// GetOrders serves ?id= and ?orderNumber= with single-result semantics (no
// pagination block) and falls back to a filtered, paginated listing.
func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	if idParam := c.QueryParam("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			l.Warn("get_orders_error", "status", 400, "reason", "id is not a uuid", "error", err)
			return transport.Fail(c, http.StatusBadRequest, "id is not a valid uuid")
		}
		order, err := h.Svc.GetOrder(ctx, id)
		if err != nil {
			return failFromError(c, l, "get_orders", err)
		}
		l.Info("get_orders_success", "id", id)
		return transport.OK(c, http.StatusOK, order)
	}

	if number := c.QueryParam("orderNumber"); number != "" {
		order, err := h.Svc.GetOrderByNumber(ctx, number)
		if err != nil {
			return failFromError(c, l, "get_orders", err)
		}
		l.Info("get_orders_success", "order_number", number)
		return transport.OK(c, http.StatusOK, order)
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, limit)

	total, orders, err := h.Svc.ListOrders(ctx, c.QueryParam("status"), offset, limit)
	if err != nil {
		return failFromError(c, l, "get_orders", err)
	}

	l.Info("get_orders_success", "total", total)
	return transport.OKPage(c, http.StatusOK, orders, transport.NewPagination(page, limit, total))
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "reason", "invalid body", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Checkout(ctx, req)
	if err != nil {
		return failFromError(c, l, "checkout", err)
	}

	publish(c, h.Producer, events.TopicOrderEvents, order.ID.String(), map[string]any{
		"type":        "order_created",
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"total":       order.Total,
	})

	l.Info("checkout_success", "order_number", order.OrderNumber, "total", order.Total)
	return transport.OK(c, http.StatusCreated, order)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "id is not a valid uuid")
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "invalid body", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateOrder(ctx, id, req)
	if err != nil {
		return failFromError(c, l, "update_order", err)
	}

	l.Info("update_order_success", "id", id, "status", order.Status)
	return transport.OK(c, http.StatusOK, order)
}
