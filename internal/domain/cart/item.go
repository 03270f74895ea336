package cart

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the working order. Name, Code, Unit and
// Image are display copies captured when the line was added or hydrated.
// AvailableStock is the stock snapshot taken at that same moment; it is never
// refreshed silently, only by an explicit reload or hydration.
type LineItem struct {
	ProductID       uuid.UUID       `json:"product_id"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountPerUnit decimal.Decimal `json:"discount_per_unit"`
	AvailableStock  decimal.Decimal `json:"available_stock"`
	Image           *string         `json:"image,omitempty"`
}

// Subtotal returns quantity x unit price for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// ExceedsStock reports whether the requested quantity is above the captured
// stock snapshot.
func (li LineItem) ExceedsStock() bool {
	return li.Quantity.GreaterThan(li.AvailableStock)
}

// ProductInfo carries the product fields the store needs when a new line is
// added: identity, display copies, the list sale price and the current
// disposable stock figure.
type ProductInfo struct {
	ID             uuid.UUID
	Name           string
	Code           string
	Unit           string
	SalePrice      decimal.Decimal
	AvailableStock decimal.Decimal
	Image          *string
}

// ParseAmount coerces free-form numeric input to a decimal. Malformed input
// yields zero rather than an error; the editing surface never blocks on a
// single keystroke.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

var hundred = decimal.NewFromInt(100)

// clampPercent forces a discount percentage into [0,100].
func clampPercent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}

// clampNonNegative forces a currency amount to be >= 0. There is no upper
// bound: a per-unit discount is an amount, not a ratio.
func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// MarshalItems serializes an item list for the durable snapshot slot.
// Array order carries the display order.
func MarshalItems(items []LineItem) ([]byte, error) {
	return json.Marshal(items)
}

// UnmarshalItems restores an item list from a snapshot payload.
func UnmarshalItems(data []byte) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
