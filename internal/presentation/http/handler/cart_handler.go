package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salepointhq/salepoint-api/internal/application/service"
	"github.com/salepointhq/salepoint-api/internal/domain/enum"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/dto/response"
)

// CartHandler exposes the session cart: the ordered line items, the derived
// totals and stock flags, and the mutation commands.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the current cart state for the session
func (h *CartHandler) Get(c *gin.Context) {
	view := h.cartService.View(c.Request.Context(), GetSessionID(c))
	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem adds a product to the cart or increments its quantity
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id and stock_id are required")
		return
	}

	productID, ok := parseUUID(req.ProductID)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}
	stockID, ok := parseUUID(req.StockID)
	if !ok {
		response.BadRequest(c, "Invalid stock ID")
		return
	}

	view, err := h.cartService.AddProduct(c.Request.Context(), GetSessionID(c), productID, stockID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added to cart", view)
}

// UpdateItem applies a partial update to one cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := parseUUID(c.Param("productID"))
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateItemInput{}
	if req.Quantity != nil {
		q := req.Quantity.Value()
		input.Quantity = &q
	}
	if req.UnitPrice != nil {
		p := req.UnitPrice.Value()
		input.UnitPrice = &p
	}
	if req.DiscountPercent != nil {
		d := req.DiscountPercent.Value()
		input.DiscountPercent = &d
	}
	if req.DiscountPerUnit != nil {
		d := req.DiscountPerUnit.Value()
		input.DiscountPerUnit = &d
	}

	view := h.cartService.UpdateItem(c.Request.Context(), GetSessionID(c), productID, input)
	response.OK(c, "Cart item updated", view)
}

// RemoveItem deletes one line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseUUID(c.Param("productID"))
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	view := h.cartService.RemoveItem(c.Request.Context(), GetSessionID(c), productID)
	response.OK(c, "Cart item removed", view)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	view := h.cartService.Clear(c.Request.Context(), GetSessionID(c))
	response.OK(c, "Cart cleared", view)
}

// Hydrate rebuilds the cart from a saved order for editing
func (h *CartHandler) Hydrate(c *gin.Context) {
	orderID, ok := parseUUID(c.Param("orderID"))
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	view, err := h.cartService.HydrateFromOrder(c.Request.Context(), GetSessionID(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart hydrated from order", view)
}

// Submit turns the cart into a persisted order
func (h *CartHandler) Submit(c *gin.Context) {
	var req request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "stock_id is required")
		return
	}

	stockID, ok := parseUUID(req.StockID)
	if !ok {
		response.BadRequest(c, "Invalid stock ID")
		return
	}
	customerID, ok := parseOptionalUUID(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	docType := enum.DocumentTypeSale
	if req.DocumentType == enum.DocumentTypeProforma.String() {
		docType = enum.DocumentTypeProforma
	}

	order, err := h.cartService.Submit(c.Request.Context(), GetSessionID(c), &service.SubmitOrderInput{
		CustomerID:   customerID,
		StockID:      stockID,
		DocumentType: docType,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order submitted successfully", order)
}
