package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/internal/domain/repository"
	"github.com/salepointhq/salepoint-api/pkg/apperror"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// CustomerService handles customer lookups for order entry
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomersInput represents the input for listing customers
type ListCustomersInput struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// ListCustomers lists customers with filtering
func (s *CustomerService) ListCustomers(ctx context.Context, input *ListCustomersInput) (*pagination.PaginatedResult[entity.Customer], error) {
	params := &repository.CustomerFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
	}

	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}
