package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
// Any known status may be set from any prior status, reversals included.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// DefaultCartID keys the single shared cart. A per-user cart later becomes
// a lookup on this column instead of a schema change.
var DefaultCartID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"                     json:"id"`
	Name        string          `gorm:"column:name;not null"                     json:"name"`
	Description string          `gorm:"column:description;not null"              json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"column:stock;not null;check:stock >= 0"   json:"stock"`
	CreatedAt   time.Time       `gorm:"column:created_at"                        json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"                        json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Product) TableName() string { return "products" }

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"                                               json:"id"`
	CartID    uuid.UUID `gorm:"column:cart_id;type:uuid;uniqueIndex:idx_cart_product;not null"    json:"cartId"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;uniqueIndex:idx_cart_product;not null" json:"productId"`
	Quantity  int       `gorm:"column:quantity;not null;check:quantity > 0"                        json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at"                                                  json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at"                                                  json:"updatedAt"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CartID == uuid.Nil {
		c.CartID = DefaultCartID
	}
	return nil
}

func (CartItem) TableName() string { return "cart_items" }

type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"                              json:"id"`
	OrderNumber     string          `gorm:"column:order_number;size:50;uniqueIndex;not null"  json:"orderNumber"`
	Status          string          `gorm:"column:status;index;not null"                      json:"status"`
	Total           decimal.Decimal `gorm:"column:total;type:decimal(10,2);not null"          json:"total"`
	CustomerEmail   string          `gorm:"column:customer_email;size:255"                    json:"customerEmail,omitempty"`
	CustomerName    string          `gorm:"column:customer_name;size:255"                     json:"customerName,omitempty"`
	ShippingAddress string          `gorm:"column:shipping_address"                           json:"shippingAddress,omitempty"`
	Notes           string          `gorm:"column:notes"                                      json:"notes,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"                                json:"items"`
	CreatedAt       time.Time       `gorm:"column:created_at;index"                           json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"                                 json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (Order) TableName() string { return "orders" }

// OrderItem snapshots the purchased product at checkout time, so later
// catalog edits never alter historical orders.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"                        json:"id"`
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;index;not null"    json:"orderId"`
	ProductID   uuid.UUID       `gorm:"column:product_id;type:uuid;index;not null"  json:"productId"`
	ProductName string          `gorm:"column:product_name;not null"                json:"productName"`
	Quantity    int             `gorm:"column:quantity;not null;check:quantity > 0" json:"quantity"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"    json:"price"`
	Subtotal    decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2);not null" json:"subtotal"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (OrderItem) TableName() string { return "order_items" }
