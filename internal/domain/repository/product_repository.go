package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// ProductWithStock pairs a product with its disposable quantity at one stock
// location.
type ProductWithStock struct {
	Product        entity.Product  `json:"product"`
	AvailableStock decimal.Decimal `json:"available_stock"`
}

// ProductFilterParams contains filtering parameters for product searches
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	StockID    uuid.UUID
	Search     string
	CategoryID *uuid.UUID
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// Search lists products matching the query/category filter together with
	// their availability at the given stock location.
	Search(ctx context.Context, params *ProductFilterParams) ([]ProductWithStock, int64, error)
	// GetWithStock retrieves one product and its disposable quantity at the
	// given stock location. A missing product returns (nil, zero, nil).
	GetWithStock(ctx context.Context, productID, stockID uuid.UUID) (*entity.Product, decimal.Decimal, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
}

// StockRepository defines the interface for stock location data operations
type StockRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Stock, error)
	GetDefault(ctx context.Context) (*entity.Stock, error)
	List(ctx context.Context) ([]entity.Stock, error)
}
