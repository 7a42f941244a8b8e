package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelab/commerce-api/internal/models"
	"github.com/storelab/commerce-api/internal/ordernum"
	"github.com/storelab/commerce-api/internal/repo"
	"github.com/storelab/commerce-api/internal/transport"
)

type OrderService struct {
	Repo    *repo.GormRepo
	Numbers *ordernum.Generator
}

// Checkout converts the whole shared cart into one pending order. The heavy
// lifting happens in a single repo transaction; a failure there leaves cart
// and stock untouched.
func (s *OrderService) Checkout(ctx context.Context, req transport.CheckoutRequest) (*models.Order, error) {
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return nil, fmt.Errorf("%w: email must be a valid email address", ErrValidation)
		}
	}

	number, err := s.Numbers.Next()
	if err != nil {
		return nil, fmt.Errorf("generate order number: %w", err)
	}

	draft := models.Order{
		OrderNumber:     number,
		CustomerEmail:   req.Email,
		CustomerName:    req.Name,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}

	order, err := s.Repo.CheckoutCart(ctx, models.DefaultCartID, &draft)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart references a missing product: %w", ErrNotFound)
	}
	return order, err
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, err
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.Repo.GetOrderByNumber(ctx, orderNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", orderNumber, ErrNotFound)
	}
	return order, err
}

func (s *OrderService) ListOrders(ctx context.Context, status string, offset, limit int) (int64, []models.Order, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return 0, nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.Repo.ListOrders(ctx, status, offset, limit)
}

// UpdateOrder accepts any known status from any prior status; there is no
// transition graph in this system.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, req transport.UpdateOrderRequest) (*models.Order, error) {
	if req.Status != nil && !models.ValidOrderStatus(*req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
	}
	if req.CustomerEmail != nil && *req.CustomerEmail != "" {
		if _, err := mail.ParseAddress(*req.CustomerEmail); err != nil {
			return nil, fmt.Errorf("%w: email must be a valid email address", ErrValidation)
		}
	}

	order, err := s.Repo.UpdateOrder(ctx, id, req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, err
}
