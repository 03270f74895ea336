package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a sellable item in the catalog
type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Code         string          `gorm:"size:100;unique;not null" json:"code"`
	Unit         string          `gorm:"size:50;default:pcs" json:"unit"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"selling_price"`
	Image        *string         `gorm:"size:255" json:"image,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	StockLevels []StockLevel `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Stock represents a stock location (warehouse, shop floor)
type Stock struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Code      string         `gorm:"size:100;unique;not null" json:"code"`
	IsDefault bool           `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Levels []StockLevel `gorm:"foreignKey:StockID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock location
func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Stock model
func (Stock) TableName() string {
	return "stocks"
}

// StockLevel holds the disposable quantity of one product at one location.
// Quantity is decimal because fractional units of sale are supported.
type StockLevel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_levels_product_stock" json:"product_id"`
	StockID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_levels_product_stock" json:"stock_id"`
	Quantity  decimal.Decimal `gorm:"type:decimal(15,3);default:0" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
	Stock   Stock   `gorm:"foreignKey:StockID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock level
func (sl *StockLevel) BeforeCreate(tx *gorm.DB) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockLevel model
func (StockLevel) TableName() string {
	return "stock_levels"
}
