package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salepointhq/salepoint-api/internal/application/service"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/response"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with filtering
func (h *CustomerHandler) List(c *gin.Context) {
	var filter request.CustomerFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	params.Validate()

	result, err := h.customerService.ListCustomers(c.Request.Context(), &service.ListCustomersInput{
		Pagination: params,
		Search:     filter.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get retrieves a customer by ID
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, ok := parseUUID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}
