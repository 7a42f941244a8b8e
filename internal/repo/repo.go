package repo

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

var ErrEmptyCart = errors.New("cannot checkout with an empty cart")

// InsufficientStockError names the offending product so the HTTP layer can
// surface an attributable message.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for product %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested,
	)
}
