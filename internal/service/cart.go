package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelab/commerce-api/internal/models"
	"github.com/storelab/commerce-api/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context) ([]models.CartItem, error) {
	return s.Repo.GetCartItems(ctx, models.DefaultCartID)
}

// AddToCart merges into an existing line for the same product. The merged
// quantity may not exceed the product's current stock.
func (s *CartService) AddToCart(ctx context.Context, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: productId is required", ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	prod, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	existing, err := s.Repo.FindCartItemByProduct(ctx, models.DefaultCartID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}
	if newQuantity > prod.Stock {
		return nil, &repo.InsufficientStockError{
			ProductID:   prod.ID,
			ProductName: prod.Name,
			Available:   prod.Stock,
			Requested:   newQuantity,
		}
	}

	if existing != nil {
		return s.Repo.UpdateCartItemQuantity(ctx, existing.ID, newQuantity)
	}

	item := models.CartItem{
		CartID:    models.DefaultCartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.Repo.CreateCartItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) UpdateCartItem(ctx context.Context, id uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	item, err := s.Repo.GetCartItem(ctx, id, models.DefaultCartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	prod, err := s.Repo.GetProduct(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrNotFound)
		}
		return nil, err
	}

	if quantity > prod.Stock {
		return nil, &repo.InsufficientStockError{
			ProductID:   prod.ID,
			ProductName: prod.Name,
			Available:   prod.Stock,
			Requested:   quantity,
		}
	}

	return s.Repo.UpdateCartItemQuantity(ctx, item.ID, quantity)
}

func (s *CartService) RemoveCartItem(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteCartItem(ctx, id, models.DefaultCartID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item %s: %w", id, ErrNotFound)
	}
	return err
}

func (s *CartService) ClearCart(ctx context.Context) error {
	return s.Repo.ClearCart(ctx, models.DefaultCartID)
}
