package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salepointhq/salepoint-api/internal/application/service"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/response"
	"github.com/salepointhq/salepoint-api/pkg/pagination"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles product searches with availability at a stock location
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	params.Validate()

	input := &service.SearchProductsInput{
		Search:     filter.Search,
		Pagination: params,
	}

	if stockID, ok := parseOptionalUUID(filter.StockID); ok {
		input.StockID = stockID
	} else {
		response.BadRequest(c, "Invalid stock ID")
		return
	}
	if categoryID, ok := parseOptionalUUID(filter.CategoryID); ok {
		input.CategoryID = categoryID
	} else {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	result, err := h.productService.SearchProducts(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get retrieves one product with its stock figure
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := parseUUID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	stockID, ok := parseOptionalUUID(c.Query("stock_id"))
	if !ok {
		response.BadRequest(c, "Invalid stock ID")
		return
	}

	result, err := h.productService.GetProductStock(c.Request.Context(), productID, stockID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", result)
}

// ListCategories lists all product categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// ListStocks lists all stock locations
func (h *ProductHandler) ListStocks(c *gin.Context) {
	stocks, err := h.productService.ListStocks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stocks retrieved successfully", stocks)
}
