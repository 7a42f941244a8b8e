package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storelab/commerce-api/internal/models"
	"github.com/storelab/commerce-api/internal/ordernum"
	"github.com/storelab/commerce-api/internal/repo"
	"github.com/storelab/commerce-api/internal/service"
	"github.com/storelab/commerce-api/internal/transport"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Products *ProductHTTP
	Cart     *CartHTTP
	Orders   *OrderHTTP
}

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)
	r := &repo.GormRepo{DB: db}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Products: &ProductHTTP{Svc: &service.CatalogService{Repo: r}},
		Cart:     &CartHTTP{Svc: &service.CartService{Repo: r}},
		Orders:   &OrderHTTP{Svc: &service.OrderService{Repo: r, Numbers: ordernum.NewGenerator()}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createProduct(name, price string, stock int) *models.Product {
	env.T.Helper()
	prod := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
	}
	require.NoError(env.T, env.DB.Create(&prod).Error)
	return &prod
}

func (env *testEnv) addToCart(productID string, quantity int) models.CartItem {
	env.T.Helper()
	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart", map[string]any{
		"productId": productID,
		"quantity":  quantity,
	})
	require.NoError(env.T, env.Cart.AddToCart(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    models.CartItem `json:"data"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(env.T, resp.Success)
	return resp.Data
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) transport.Response {
	t.Helper()
	var resp transport.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
