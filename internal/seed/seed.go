package seed

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storelab/commerce-api/internal/models"
)

// Products inserts a small demo catalog on first start. A non-empty
// products table is left alone.
func Products(ctx context.Context, db *gorm.DB) (int, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&existing).Error; err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	products := []models.Product{
		{
			Name:        "Laptop",
			Description: "High-performance laptop with latest processor",
			Price:       decimal.RequireFromString("999.99"),
			Stock:       10,
		},
		{
			Name:        "Mouse",
			Description: "Wireless ergonomic mouse",
			Price:       decimal.RequireFromString("29.99"),
			Stock:       50,
		},
		{
			Name:        "Keyboard",
			Description: "Mechanical keyboard with RGB lighting",
			Price:       decimal.RequireFromString("79.99"),
			Stock:       30,
		},
	}

	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return 0, err
	}
	return len(products), nil
}
