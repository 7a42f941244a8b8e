package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success    bool         `json:"success"`
	Data       any          `json:"data,omitempty"`
	Message    string       `json:"message,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Error      string       `json:"error,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	TotalPages      int64 `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     int64(page) < totalPages,
		HasPreviousPage: page > 1,
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type PatchProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	ShippingAddress string `json:"shippingAddress"`
	Notes           string `json:"notes"`
}

type UpdateOrderRequest struct {
	Status          *string `json:"status"`
	CustomerEmail   *string `json:"customerEmail"`
	CustomerName    *string `json:"customerName"`
	ShippingAddress *string `json:"shippingAddress"`
	Notes           *string `json:"notes"`
}
