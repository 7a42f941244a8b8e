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

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, limit)

	total, items, err := h.Svc.GetProducts(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		return failFromError(c, l, "get_products", err)
	}

	l.Info("get_products_success", "total", total)
	return transport.OKPage(c, http.StatusOK, items, transport.NewPagination(page, limit, total))
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "id is not a valid uuid")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return failFromError(c, l, "get_product", err)
	}

	l.Info("get_product_success")
	return transport.OK(c, http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return failFromError(c, l, "create_product", err)
	}

	publish(c, h.Producer, events.TopicProductEvents, product.ID.String(), map[string]any{
		"type":      "product_created",
		"productId": product.ID,
		"name":      product.Name,
	})

	l.Info("create_product_success")
	return transport.OK(c, http.StatusCreated, product)
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("patch_product_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "id is not a valid uuid")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "reason", "invalid body", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.PatchProduct(ctx, req, id)
	if err != nil {
		return failFromError(c, l, "patch_product", err)
	}

	publish(c, h.Producer, events.TopicProductEvents, product.ID.String(), map[string]any{
		"type":      "product_updated",
		"productId": product.ID,
		"name":      product.Name,
	})

	l.Info("patch_product_success")
	return transport.OK(c, http.StatusOK, product)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return transport.Fail(c, http.StatusBadRequest, "id is not a valid uuid")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return failFromError(c, l, "delete_product", err)
	}

	publish(c, h.Producer, events.TopicProductEvents, id.String(), map[string]any{
		"type":      "product_deleted",
		"productId": id,
	})

	l.Info("delete_product_success")
	return transport.OKMessage(c, http.StatusOK, nil, "product deleted")
}
