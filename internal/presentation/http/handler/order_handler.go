package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salepointhq/salepoint-api/internal/application/service"
	"github.com/salepointhq/salepoint-api/internal/domain/enum"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/response"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// OrderHandler handles order and proforma HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders with filtering
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	params.Validate()

	input := &service.ListOrdersInput{
		Pagination: params,
		Search:     filter.Search,
	}

	switch filter.DocumentType {
	case enum.DocumentTypeSale.String():
		docType := enum.DocumentTypeSale
		input.DocumentType = &docType
	case enum.DocumentTypeProforma.String():
		docType := enum.DocumentTypeProforma
		input.DocumentType = &docType
	}

	switch filter.Status {
	case enum.OrderStatusSubmitted.String():
		status := enum.OrderStatusSubmitted
		input.Status = &status
	case enum.OrderStatusCompleted.String():
		status := enum.OrderStatusCompleted
		input.Status = &status
	case enum.OrderStatusCancelled.String():
		status := enum.OrderStatusCancelled
		input.Status = &status
	}

	if customerID, ok := parseOptionalUUID(filter.CustomerID); ok {
		input.CustomerID = customerID
	} else {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get retrieves an order with its details
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := parseUUID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus updates the status of an order
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := parseUUID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		Status enum.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order status updated", nil)
}
