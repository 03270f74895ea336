package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/salepointhq/salepoint-api/internal/domain/cart"
	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/internal/domain/repository"
)

// CartHydrator rebuilds a working item list from a saved order's lines,
// resolving each line's current product and stock figure from the catalog.
type CartHydrator struct {
	productRepo repository.ProductRepository
	log         zerolog.Logger
}

// NewCartHydrator creates a new cart hydrator
func NewCartHydrator(productRepo repository.ProductRepository, log zerolog.Logger) *CartHydrator {
	return &CartHydrator{productRepo: productRepo, log: log}
}

// Hydrate fetches product and stock data for every saved line concurrently
// and waits for all lookups to settle before returning the combined list, in
// saved-line order, ready for a single Load. A failed lookup degrades that
// line to a placeholder instead of aborting the batch; the saved quantity,
// price and discount are authoritative either way.
func (h *CartHydrator) Hydrate(ctx context.Context, order *entity.Order) []cart.LineItem {
	items := make([]cart.LineItem, len(order.Details))

	var wg sync.WaitGroup
	for i, line := range order.Details {
		wg.Add(1)
		go func(i int, line entity.OrderDetail) {
			defer wg.Done()
			items[i] = h.resolveLine(ctx, line, order)
		}(i, line)
	}
	wg.Wait()

	return items
}

func (h *CartHydrator) resolveLine(ctx context.Context, line entity.OrderDetail, order *entity.Order) cart.LineItem {
	product, available, err := h.productRepo.GetWithStock(ctx, line.ProductID, order.StockID)
	if err != nil {
		h.log.Warn().
			Err(err).
			Str("order", order.Reference).
			Str("product_id", line.ProductID.String()).
			Msg("product lookup failed during hydration, using fallback line")
		return fallbackLine(line)
	}
	if product == nil {
		h.log.Warn().
			Str("order", order.Reference).
			Str("product_id", line.ProductID.String()).
			Msg("product no longer exists, using fallback line")
		return fallbackLine(line)
	}

	return cart.LineItem{
		ProductID:       line.ProductID,
		Name:            product.Name,
		Code:            product.Code,
		Unit:            product.Unit,
		Quantity:        line.Quantity,
		UnitPrice:       line.UnitPrice,
		DiscountPercent: decimal.Zero,
		DiscountPerUnit: line.DiscountAmount,
		AvailableStock:  available,
		Image:           product.Image,
	}
}

// fallbackLine builds a degraded line from the identifiers in the saved
// record alone: placeholder display fields, zero stock, no image.
func fallbackLine(line entity.OrderDetail) cart.LineItem {
	shortID := line.ProductID.String()[:8]
	name := line.ProductName
	if name == "" {
		name = "Product " + shortID
	}
	code := line.ProductCode
	if code == "" {
		code = shortID
	}

	return cart.LineItem{
		ProductID:       line.ProductID,
		Name:            name,
		Code:            code,
		Unit:            "pcs",
		Quantity:        line.Quantity,
		UnitPrice:       line.UnitPrice,
		DiscountPercent: decimal.Zero,
		DiscountPerUnit: line.DiscountAmount,
		AvailableStock:  decimal.Zero,
		Image:           nil,
	}
}
