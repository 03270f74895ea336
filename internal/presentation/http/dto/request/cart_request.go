package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salepointhq/salepoint-api/internal/domain/cart"
)

// FlexAmount is a decimal field that accepts JSON numbers or strings and
// coerces malformed input to zero instead of failing the request. The editing
// surface stays responsive on every keystroke; bad input becomes a safe
// default, never an error.
type FlexAmount struct {
	decimal.Decimal
}

// UnmarshalJSON never returns an error for scalar input: anything that does
// not parse as a number is treated as zero.
func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = cart.ParseAmount(s)
	return nil
}

// Value returns the coerced decimal.
func (a *FlexAmount) Value() decimal.Decimal {
	return a.Decimal
}

// AddCartItemRequest represents the request to add a product to the cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	StockID   string `json:"stock_id" binding:"required"`
}

// UpdateCartItemRequest represents a partial update of one cart line. Absent
// fields are left untouched.
type UpdateCartItemRequest struct {
	Quantity        *FlexAmount `json:"quantity"`
	UnitPrice       *FlexAmount `json:"unit_price"`
	DiscountPercent *FlexAmount `json:"discount_percent"`
	DiscountPerUnit *FlexAmount `json:"discount_per_unit"`
}

// SubmitOrderRequest represents the request to submit the cart as an order
type SubmitOrderRequest struct {
	CustomerID   string  `json:"customer_id"`
	StockID      string  `json:"stock_id" binding:"required"`
	DocumentType string  `json:"document_type"`
	Notes        *string `json:"notes"`
}
