package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/internal/domain/enum"
	"github.com/salepointhq/salepoint-api/internal/domain/repository"
	"github.com/salepointhq/salepoint-api/pkg/apperror"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// OrderService handles the read side of saved orders and proformas; creation
// goes through the cart submission flow.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetOrder retrieves an order with its line details
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrdersInput represents the input for listing orders
type ListOrdersInput struct {
	Pagination   *pagination.PaginationParams
	Search       string
	DocumentType *enum.DocumentType
	Status       *enum.OrderStatus
	CustomerID   *uuid.UUID
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, input *ListOrdersInput) (*pagination.PaginatedResult[entity.Order], error) {
	params := &repository.OrderFilterParams{
		Pagination:   input.Pagination,
		Search:       input.Search,
		DocumentType: input.DocumentType,
		Status:       input.Status,
		CustomerID:   input.CustomerID,
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderStatus updates the status of an order
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
