package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/internal/domain/repository"
	"github.com/salepointhq/salepoint-api/pkg/apperror"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// ProductService handles catalog lookups for the order-entry screens
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	stockRepo    repository.StockRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	stockRepo repository.StockRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		stockRepo:    stockRepo,
	}
}

// SearchProductsInput represents the input for a product search
type SearchProductsInput struct {
	StockID    *uuid.UUID
	Search     string
	CategoryID *uuid.UUID
	Pagination *pagination.PaginationParams
}

// SearchProducts lists matching products with their availability at the
// requested stock location (the default location when none is given).
func (s *ProductService) SearchProducts(ctx context.Context, input *SearchProductsInput) (*pagination.PaginatedResult[repository.ProductWithStock], error) {
	stockID, err := s.resolveStock(ctx, input.StockID)
	if err != nil {
		return nil, err
	}

	params := &repository.ProductFilterParams{
		Pagination: input.Pagination,
		StockID:    stockID,
		Search:     input.Search,
		CategoryID: input.CategoryID,
	}

	products, total, err := s.productRepo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetProductStock retrieves one product together with its disposable
// quantity at the given stock location.
func (s *ProductService) GetProductStock(ctx context.Context, productID uuid.UUID, stockID *uuid.UUID) (*repository.ProductWithStock, error) {
	resolvedStockID, err := s.resolveStock(ctx, stockID)
	if err != nil {
		return nil, err
	}

	product, available, err := s.productRepo.GetWithStock(ctx, productID, resolvedStockID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return &repository.ProductWithStock{Product: *product, AvailableStock: available}, nil
}

// ListCategories lists all product categories
func (s *ProductService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// ListStocks lists all stock locations
func (s *ProductService) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	return s.stockRepo.List(ctx)
}

func (s *ProductService) resolveStock(ctx context.Context, stockID *uuid.UUID) (uuid.UUID, error) {
	if stockID != nil {
		return *stockID, nil
	}
	stock, err := s.stockRepo.GetDefault(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if stock == nil {
		return uuid.Nil, apperror.NewNotFoundError("Default stock location")
	}
	return stock.ID, nil
}
