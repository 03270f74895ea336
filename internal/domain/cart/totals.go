package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salepointhq/salepoint-api/internal/domain/enum"
)

// Totals are derived from the item set on every read and never stored.
// ItemsCount is the number of distinct lines, not the summed quantity.
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	FinalTotal    decimal.Decimal `json:"final_total"`
	ItemsCount    int             `json:"items_count"`
}

// LineBreakdown is the per-line arithmetic for per-unit discount mode.
// OverDiscount flags a line whose discount exceeds its own subtotal; the
// owning screen surfaces a warning instead of the aggregate silently clamping.
type LineBreakdown struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Final        decimal.Decimal `json:"final"`
	OverDiscount bool            `json:"over_discount"`
}

// ComputeTotals derives subtotal, discount and final totals under the given
// discount mode.
//
// Percent mode: discount = sum(qty x price x pct/100) and the identity
// subtotal - discount == final holds for every item set.
//
// Per-unit mode: each line is clamped to zero individually, final is the sum
// of clamped line finals, and the displayed discount total is the raw
// sum(qty x perUnit) — it may exceed subtotal - final when a single line's
// discount is larger than that line's subtotal.
func ComputeTotals(items []LineItem, mode enum.DiscountMode) Totals {
	t := Totals{
		Subtotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
		FinalTotal:    decimal.Zero,
		ItemsCount:    len(items),
	}

	if mode == enum.DiscountModePerUnit {
		for _, li := range items {
			lineSubtotal := li.Subtotal()
			lineDiscount := li.Quantity.Mul(li.DiscountPerUnit)
			lineFinal := lineSubtotal.Sub(lineDiscount)
			if lineFinal.IsNegative() {
				lineFinal = decimal.Zero
			}
			t.Subtotal = t.Subtotal.Add(lineSubtotal)
			t.DiscountTotal = t.DiscountTotal.Add(lineDiscount)
			t.FinalTotal = t.FinalTotal.Add(lineFinal)
		}
		return t
	}

	for _, li := range items {
		lineSubtotal := li.Subtotal()
		t.Subtotal = t.Subtotal.Add(lineSubtotal)
		t.DiscountTotal = t.DiscountTotal.Add(lineSubtotal.Mul(li.DiscountPercent).Div(hundred))
	}
	t.FinalTotal = t.Subtotal.Sub(t.DiscountTotal)
	return t
}

// ComputeLineBreakdowns returns the per-line arithmetic for per-unit mode,
// including the over-discount warning flags.
func ComputeLineBreakdowns(items []LineItem) []LineBreakdown {
	out := make([]LineBreakdown, 0, len(items))
	for _, li := range items {
		lineSubtotal := li.Subtotal()
		lineDiscount := li.Quantity.Mul(li.DiscountPerUnit)
		lineFinal := lineSubtotal.Sub(lineDiscount)
		over := lineFinal.IsNegative()
		if over {
			lineFinal = decimal.Zero
		}
		out = append(out, LineBreakdown{
			ProductID:    li.ProductID,
			Subtotal:     lineSubtotal,
			Discount:     lineDiscount,
			Final:        lineFinal,
			OverDiscount: over,
		})
	}
	return out
}

// DiscountAmountPerUnit converts the line's discount to a per-unit currency
// amount under the given mode; saved order lines persist discounts in this
// shape regardless of how the screen captured them.
func (li LineItem) DiscountAmountPerUnit(mode enum.DiscountMode) decimal.Decimal {
	if mode == enum.DiscountModePerUnit {
		return li.DiscountPerUnit
	}
	return li.UnitPrice.Mul(li.DiscountPercent).Div(hundred)
}
