package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	api.GET("/products", d.ProductHandler.GetProducts)
	api.GET("/products/:id", d.ProductHandler.GetProduct)
	api.POST("/products", d.ProductHandler.CreateProduct)
	api.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	api.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	api.GET("/cart", d.CartHandler.GetCart)
	api.POST("/cart", d.CartHandler.AddToCart)
	api.PUT("/cart/:id", d.CartHandler.UpdateCartItem)
	api.DELETE("/cart/:id", d.CartHandler.RemoveCartItem)

	api.GET("/orders", d.OrderHandler.GetOrders)
	api.PATCH("/orders/:id", d.OrderHandler.UpdateOrder)
	api.POST("/checkout", d.OrderHandler.Checkout)
}
