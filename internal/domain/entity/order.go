package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salepointhq/salepoint-api/internal/domain/enum"
)

// Order represents a submitted sale or proforma document. Totals are the
// figures computed by the cart at submission time; the server is the final
// arbiter but the builder's numbers are what got signed off on screen.
type Order struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    *uuid.UUID        `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	StockID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"stock_id"`
	Reference     string            `gorm:"size:100;unique;not null" json:"reference"`
	DocumentType  enum.DocumentType `gorm:"default:0" json:"document_type"`
	DiscountMode  enum.DiscountMode `gorm:"default:0" json:"discount_mode"`
	Status        enum.OrderStatus  `gorm:"default:0" json:"status"`
	OrderDate     time.Time         `gorm:"type:date;not null" json:"order_date"`
	SubTotal      decimal.Decimal   `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountTotal decimal.Decimal   `gorm:"type:decimal(15,2);default:0" json:"discount_total"`
	Total         decimal.Decimal   `gorm:"type:decimal(15,2);default:0" json:"total"`
	Notes         *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Stock    Stock         `gorm:"foreignKey:StockID" json:"-"`
	Details  []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderDetail represents one saved line of an order. ProductName and
// ProductCode are display snapshots; Quantity, UnitPrice and DiscountAmount
// are the transactional values and stay authoritative when the order is later
// reopened for editing.
type OrderDetail struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName    string          `gorm:"size:255" json:"product_name"`
	ProductCode    string          `gorm:"size:100" json:"product_code"`
	Quantity       decimal.Decimal `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order detail
func (od *OrderDetail) BeforeCreate(tx *gorm.DB) error {
	if od.ID == uuid.Nil {
		od.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderDetail model
func (OrderDetail) TableName() string {
	return "order_details"
}
