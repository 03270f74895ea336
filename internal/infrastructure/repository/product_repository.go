package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	domainRepo "github.com/salepointhq/salepoint-api/internal/domain/repository"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Search(ctx context.Context, params *domainRepo.ProductFilterParams) ([]domainRepo.ProductWithStock, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{}).Preload("Category")

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", search, search)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []entity.Product
	err := query.
		Order("name ASC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	levels, err := r.stockLevels(ctx, products, params.StockID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domainRepo.ProductWithStock, 0, len(products))
	for _, p := range products {
		result = append(result, domainRepo.ProductWithStock{
			Product:        p,
			AvailableStock: levels[p.ID],
		})
	}
	return result, total, nil
}

func (r *productRepository) GetWithStock(ctx context.Context, productID, stockID uuid.UUID) (*entity.Product, decimal.Decimal, error) {
	product, err := r.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, decimal.Zero, err
	}

	var level entity.StockLevel
	err = r.db.WithContext(ctx).
		First(&level, "product_id = ? AND stock_id = ?", productID, stockID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, decimal.Zero, nil
	}
	if err != nil {
		return nil, decimal.Zero, err
	}
	return product, level.Quantity, nil
}

// stockLevels fetches availability for a page of products in one query.
func (r *productRepository) stockLevels(ctx context.Context, products []entity.Product, stockID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	out := make(map[uuid.UUID]decimal.Decimal, len(products))
	if len(products) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	var levels []entity.StockLevel
	err := r.db.WithContext(ctx).
		Where("product_id IN ? AND stock_id = ?", ids, stockID).
		Find(&levels).Error
	if err != nil {
		return nil, err
	}

	for _, l := range levels {
		out[l.ProductID] = l.Quantity
	}
	return out, nil
}
