package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storelab/commerce-api/internal/models"
	"github.com/storelab/commerce-api/internal/transport"
)

// CheckoutCart turns the cart into one order inside a single transaction:
// read lines, pre-flight stock, decrement, snapshot, insert order, clear
// cart. Any failure rolls everything back, so a partial checkout never
// leaves stock decremented.
func (r *GormRepo) CheckoutCart(ctx context.Context, cartID uuid.UUID, draft *models.Order) (*models.Order, error) {
	var order models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("cart_id = ?", cartID).
			Order("created_at ASC").
			Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		// Pre-flight gives an attributable error before any mutation.
		for _, ci := range cartItems {
			var prod models.Product
			if err := tx.Where("id = ?", ci.ProductID).First(&prod).Error; err != nil {
				return err
			}
			if prod.Stock < ci.Quantity {
				return &InsufficientStockError{
					ProductID:   prod.ID,
					ProductName: prod.Name,
					Available:   prod.Stock,
					Requested:   ci.Quantity,
				}
			}
		}

		total := decimal.Zero
		lines := make([]models.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			var prod models.Product
			if err := tx.Where("id = ?", ci.ProductID).First(&prod).Error; err != nil {
				return err
			}
			if err := reduceStock(tx, prod.ID, ci.Quantity); err != nil {
				return err
			}

			subtotal := prod.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
			total = total.Add(subtotal)
			lines = append(lines, models.OrderItem{
				ProductID:   prod.ID,
				ProductName: prod.Name,
				Quantity:    ci.Quantity,
				Price:       prod.Price,
				Subtotal:    subtotal,
			})
		}

		order = models.Order{
			OrderNumber:     draft.OrderNumber,
			Status:          models.OrderStatusPending,
			Total:           total,
			CustomerEmail:   draft.CustomerEmail,
			CustomerName:    draft.CustomerName,
			ShippingAddress: draft.ShippingAddress,
			Notes:           draft.Notes,
			Items:           lines,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, status string, offset, limit int) (int64, []models.Order, error) {
	scope := func() *gorm.DB {
		q := r.DB.WithContext(ctx).Model(&models.Order{})
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return 0, nil, err
	}

	orders := make([]models.Order, 0)
	if err := scope().Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return 0, nil, err
	}

	return total, orders, nil
}

func (r *GormRepo) UpdateOrder(ctx context.Context, id uuid.UUID, req transport.UpdateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&order).Error; err != nil {
			return err
		}

		if req.Status != nil {
			order.Status = *req.Status
		}
		if req.CustomerEmail != nil {
			order.CustomerEmail = *req.CustomerEmail
		}
		if req.CustomerName != nil {
			order.CustomerName = *req.CustomerName
		}
		if req.ShippingAddress != nil {
			order.ShippingAddress = *req.ShippingAddress
		}
		if req.Notes != nil {
			order.Notes = *req.Notes
		}

		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return tx.Preload("Items").Where("id = ?", id).First(&order).Error
	}); err != nil {
		return nil, err
	}
	return &order, nil
}
