package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/storelab/commerce-api/internal/models"
	"github.com/storelab/commerce-api/internal/transport"
)

func TestProductRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/products", map[string]any{
		"name":        "Laptop",
		"description": "High-performance laptop",
		"price":       "999.99",
		"stock":       10,
	})
	require.NoError(t, env.Products.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Success bool           `json:"success"`
		Data    models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.NotEmpty(t, created.Data.ID)

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/products/"+created.Data.ID.String(), nil)
	c2.SetParamNames("id")
	c2.SetParamValues(created.Data.ID.String())
	require.NoError(t, env.Products.GetProduct(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var fetched struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &fetched))
	require.Equal(t, created.Data.ID, fetched.Data.ID)
	require.Equal(t, "Laptop", fetched.Data.Name)
	require.Equal(t, "High-performance laptop", fetched.Data.Description)
	require.Equal(t, 10, fetched.Data.Stock)
	require.True(t, decimal.RequireFromString("999.99").Equal(fetched.Data.Price),
		"price should compare decimal-equal, got %s", fetched.Data.Price)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/products", map[string]any{
		"name":        "",
		"description": "no name",
		"price":       "1.00",
		"stock":       1,
	})
	require.NoError(t, env.Products.CreateProduct(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Error)

	rec2, c2 := env.doJSONRequest(http.MethodPost, "/api/products", map[string]any{
		"name":        "Bad price",
		"description": "negative",
		"price":       "-1.00",
		"stock":       1,
	})
	require.NoError(t, env.Products.CreateProduct(c2))
	require.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestGetProductsPagination(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 25; i++ {
		env.createProduct(fmt.Sprintf("product-%02d", i), "5.00", 10)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products?page=1&limit=10", nil)
	require.NoError(t, env.Products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var page1 struct {
		Success    bool                  `json:"success"`
		Data       []models.Product      `json:"data"`
		Pagination *transport.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page1))
	require.True(t, page1.Success)
	require.Len(t, page1.Data, 10)
	require.EqualValues(t, 25, page1.Pagination.Total)
	require.EqualValues(t, 3, page1.Pagination.TotalPages)
	require.True(t, page1.Pagination.HasNextPage)
	require.False(t, page1.Pagination.HasPreviousPage)

	rec3, c3 := env.doJSONRequest(http.MethodGet, "/api/products?page=3&limit=10", nil)
	require.NoError(t, env.Products.GetProducts(c3))

	var page3 struct {
		Data       []models.Product      `json:"data"`
		Pagination *transport.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec3.Body.Bytes(), &page3))
	require.Len(t, page3.Data, 5)
	require.False(t, page3.Pagination.HasNextPage)
	require.True(t, page3.Pagination.HasPreviousPage)
}

func TestGetProductsLimitClamped(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("only", "1.00", 1)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products?page=1&limit=1000", nil)
	require.NoError(t, env.Products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Pagination *transport.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 100, resp.Pagination.Limit)

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/products?page=1&limit=0", nil)
	require.NoError(t, env.Products.GetProducts(c2))

	var resp2 struct {
		Pagination *transport.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp2))
	require.Equal(t, 10, resp2.Pagination.Limit)
}

func TestGetProductsSearch(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("Laptop", "999.99", 10)
	env.createProduct("Mouse", "29.99", 50)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products?q=lap", nil)
	require.NoError(t, env.Products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.Equal(t, "Laptop", resp.Data[0].Name)
}

func TestPatchProduct(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("Keyboard", "79.99", 30)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/products/"+prod.ID.String(), map[string]any{
		"price": "59.99",
		"stock": 5,
	})
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Products.PatchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Keyboard", resp.Data.Name)
	require.Equal(t, 5, resp.Data.Stock)
	require.True(t, decimal.RequireFromString("59.99").Equal(resp.Data.Price))
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("Doomed", "1.00", 1)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/products/"+prod.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Products.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/products/"+prod.ID.String(), nil)
	c2.SetParamNames("id")
	c2.SetParamValues(prod.ID.String())
	require.NoError(t, env.Products.GetProduct(c2))
	require.Equal(t, http.StatusNotFound, rec2.Code)

	rec3, c3 := env.doJSONRequest(http.MethodDelete, "/api/products/"+prod.ID.String(), nil)
	c3.SetParamNames("id")
	c3.SetParamValues(prod.ID.String())
	require.NoError(t, env.Products.DeleteProduct(c3))
	require.Equal(t, http.StatusNotFound, rec3.Code)
}
