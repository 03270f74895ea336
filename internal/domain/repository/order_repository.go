package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/internal/domain/enum"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination   *pagination.PaginationParams
	Search       string
	DocumentType *enum.DocumentType
	Status       *enum.OrderStatus
	CustomerID   *uuid.UUID
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create persists the order together with its details in one transaction.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	GetNextReferenceNumber(ctx context.Context, docType enum.DocumentType) (int64, error)
}
