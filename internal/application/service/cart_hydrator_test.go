package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
)

func TestCartHydrator_Hydrate(t *testing.T) {
	productRepo := newFakeProductRepo()
	h := NewCartHydrator(productRepo, zerolog.Nop())

	good := &entity.Product{
		ID:           uuid.New(),
		Name:         "Current Name",
		Code:         "CUR",
		Unit:         "box",
		SellingPrice: decimal.NewFromInt(1100),
	}
	productRepo.add(good, decimal.NewFromInt(8))

	failing := uuid.New()
	productRepo.failIDs[failing] = errors.New("catalog unreachable")

	order := &entity.Order{
		ID:        uuid.New(),
		StockID:   uuid.New(),
		Reference: "SO-000007",
		Details: []entity.OrderDetail{
			{
				ProductID:      good.ID,
				ProductName:    "Old Name",
				Quantity:       decimal.NewFromInt(2),
				UnitPrice:      decimal.NewFromInt(1000),
				DiscountAmount: decimal.NewFromInt(100),
			},
			{
				ProductID:      failing,
				ProductName:    "Saved Name",
				ProductCode:    "SAV",
				Quantity:       decimal.NewFromInt(1),
				UnitPrice:      decimal.NewFromInt(500),
				DiscountAmount: decimal.Zero,
			},
		},
	}

	items := h.Hydrate(context.Background(), order)
	require.Len(t, items, 2)

	// resolved line: display fields from the catalog, transactional values
	// from the saved record
	assert.Equal(t, good.ID, items[0].ProductID)
	assert.Equal(t, "Current Name", items[0].Name)
	assert.Equal(t, "box", items[0].Unit)
	assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(1000)), "saved price wins over current list price")
	assert.True(t, items[0].DiscountPerUnit.Equal(decimal.NewFromInt(100)))
	assert.True(t, items[0].AvailableStock.Equal(decimal.NewFromInt(8)))

	// failed lookup degrades to a fallback line, keeps its slot in order
	assert.Equal(t, failing, items[1].ProductID)
	assert.Equal(t, "Saved Name", items[1].Name)
	assert.Equal(t, "SAV", items[1].Code)
	assert.True(t, items[1].AvailableStock.IsZero())
	assert.Nil(t, items[1].Image)
	assert.True(t, items[1].UnitPrice.Equal(decimal.NewFromInt(500)))
}

func TestCartHydrator_MissingProductGetsPlaceholder(t *testing.T) {
	productRepo := newFakeProductRepo()
	h := NewCartHydrator(productRepo, zerolog.Nop())

	gone := uuid.New()
	order := &entity.Order{
		ID:      uuid.New(),
		StockID: uuid.New(),
		Details: []entity.OrderDetail{{
			ProductID: gone,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(250),
		}},
	}

	items := h.Hydrate(context.Background(), order)
	require.Len(t, items, 1)

	// no saved display snapshot: the placeholder derives from the ID
	shortID := gone.String()[:8]
	assert.Equal(t, "Product "+shortID, items[0].Name)
	assert.Equal(t, shortID, items[0].Code)
	assert.Equal(t, "pcs", items[0].Unit)
	assert.True(t, items[0].AvailableStock.IsZero())
}

func TestCartHydrator_EmptyOrder(t *testing.T) {
	h := NewCartHydrator(newFakeProductRepo(), zerolog.Nop())

	items := h.Hydrate(context.Background(), &entity.Order{ID: uuid.New()})

	assert.Empty(t, items)
}
