package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storelab/commerce-api/internal/models"
	"github.com/storelab/commerce-api/internal/repo"
)

func newCatalog(t *testing.T) (*CatalogService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return &CatalogService{Repo: &repo.GormRepo{DB: db}}, db
}

func TestReduceStock(t *testing.T) {
	svc, db := newCatalog(t)
	ctx := context.Background()

	prod := models.Product{
		Name:        "Widget",
		Description: "a widget",
		Price:       decimal.RequireFromString("2.50"),
		Stock:       5,
	}
	require.NoError(t, db.Create(&prod).Error)

	require.NoError(t, svc.ReduceStock(ctx, prod.ID, 3))

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", prod.ID).Error)
	require.Equal(t, 2, got.Stock)

	// more than remaining: rejected, stock untouched
	err := svc.ReduceStock(ctx, prod.ID, 3)
	var stockErr *repo.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	require.Equal(t, 2, stockErr.Available)
	require.Equal(t, 3, stockErr.Requested)

	require.NoError(t, db.First(&got, "id = ?", prod.ID).Error)
	require.Equal(t, 2, got.Stock)

	// exact remainder drains to zero, never below
	require.NoError(t, svc.ReduceStock(ctx, prod.ID, 2))
	require.NoError(t, db.First(&got, "id = ?", prod.ID).Error)
	require.Equal(t, 0, got.Stock)

	err = svc.ReduceStock(ctx, prod.ID, 1)
	require.True(t, errors.As(err, &stockErr))
}

func TestReduceStockValidation(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	err := svc.ReduceStock(ctx, uuid.New(), 0)
	require.ErrorIs(t, err, ErrValidation)

	err = svc.ReduceStock(ctx, uuid.New(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}
