package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salepointhq/salepoint-api/internal/domain/enum"
)

func product(name string, price, stock int64) ProductInfo {
	return ProductInfo{
		ID:             uuid.New(),
		Name:           name,
		Code:           name,
		Unit:           "pcs",
		SalePrice:      decimal.NewFromInt(price),
		AvailableStock: decimal.NewFromInt(stock),
	}
}

func TestStore_AddItem(t *testing.T) {
	t.Run("new product starts at quantity 1 with seeded price and stock", func(t *testing.T) {
		s := NewStore(enum.DiscountModePercent, nil)
		p := product("Widget", 1000, 5)

		s.AddItem(p)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, p.ID, items[0].ProductID)
		assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(1)))
		assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(1000)))
		assert.True(t, items[0].AvailableStock.Equal(decimal.NewFromInt(5)))
		assert.True(t, items[0].DiscountPercent.IsZero())
		assert.True(t, items[0].DiscountPerUnit.IsZero())
	})

	t.Run("adding the same product again increments quantity", func(t *testing.T) {
		s := NewStore(enum.DiscountModePercent, nil)
		p := product("Widget", 1000, 5)

		s.AddItem(p)
		s.AddItem(p)

		items := s.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(2)))
	})

	t.Run("re-add keeps the originally captured price and stock", func(t *testing.T) {
		s := NewStore(enum.DiscountModePercent, nil)
		p := product("Widget", 1000, 5)
		s.AddItem(p)

		changed := p
		changed.SalePrice = decimal.NewFromInt(1200)
		changed.AvailableStock = decimal.NewFromInt(99)
		s.AddItem(changed)

		items := s.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(1000)))
		assert.True(t, items[0].AvailableStock.Equal(decimal.NewFromInt(5)))
	})

	t.Run("insertion order is display order", func(t *testing.T) {
		s := NewStore(enum.DiscountModePercent, nil)
		a, b, c := product("A", 10, 1), product("B", 20, 1), product("C", 30, 1)

		s.AddItem(a)
		s.AddItem(b)
		s.AddItem(c)
		s.AddItem(b)

		items := s.Items()
		require.Len(t, items, 3)
		assert.Equal(t, a.ID, items[0].ProductID)
		assert.Equal(t, b.ID, items[1].ProductID)
		assert.Equal(t, c.ID, items[2].ProductID)
	})
}

func TestStore_RemoveItem(t *testing.T) {
	s := NewStore(enum.DiscountModePercent, nil)
	a, b, c := product("A", 10, 1), product("B", 20, 1), product("C", 30, 1)
	s.AddItem(a)
	s.AddItem(b)
	s.AddItem(c)

	s.RemoveItem(b.ID)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ProductID)
	assert.Equal(t, c.ID, items[1].ProductID)

	// removing an absent product is a no-op
	s.RemoveItem(uuid.New())
	assert.Len(t, s.Items(), 2)

	// remaining lines stay addressable after the reindex
	s.UpdateQuantity(c.ID, decimal.NewFromInt(7))
	items = s.Items()
	assert.True(t, items[1].Quantity.Equal(decimal.NewFromInt(7)))
}

func TestStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity decimal.Decimal
		want     int
	}{
		{"positive quantity is stored", decimal.NewFromInt(3), 1},
		{"fractional quantity is stored", decimal.RequireFromString("2.5"), 1},
		{"zero removes the line", decimal.Zero, 0},
		{"negative removes the line", decimal.NewFromInt(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(enum.DiscountModePercent, nil)
			p := product("Widget", 1000, 5)
			s.AddItem(p)

			s.UpdateQuantity(p.ID, tt.quantity)

			items := s.Items()
			require.Len(t, items, tt.want)
			if tt.want == 1 {
				assert.True(t, items[0].Quantity.Equal(tt.quantity))
			}
		})
	}

	t.Run("unknown product is a no-op", func(t *testing.T) {
		s := NewStore(enum.DiscountModePercent, nil)
		s.UpdateQuantity(uuid.New(), decimal.NewFromInt(3))
		assert.Empty(t, s.Items())
	})
}

func TestStore_UpdatePrice(t *testing.T) {
	s := NewStore(enum.DiscountModePercent, nil)
	p := product("Widget", 1000, 5)
	s.AddItem(p)

	// negative prices are stored as-is; submission rejects them later
	s.UpdatePrice(p.ID, decimal.NewFromInt(-50))

	items := s.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(-50)))
}

func TestStore_UpdateDiscountPercent(t *testing.T) {
	tests := []struct {
		name  string
		input decimal.Decimal
		want  decimal.Decimal
	}{
		{"within range kept", decimal.NewFromInt(15), decimal.NewFromInt(15)},
		{"negative clamped to zero", decimal.NewFromInt(-10), decimal.Zero},
		{"above hundred clamped to hundred", decimal.NewFromInt(150), decimal.NewFromInt(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(enum.DiscountModePercent, nil)
			p := product("Widget", 1000, 5)
			s.AddItem(p)

			s.UpdateDiscountPercent(p.ID, tt.input)

			items := s.Items()
			require.Len(t, items, 1)
			assert.True(t, items[0].DiscountPercent.Equal(tt.want),
				"got %s, want %s", items[0].DiscountPercent, tt.want)
		})
	}
}

func TestStore_UpdateDiscountPerUnit(t *testing.T) {
	s := NewStore(enum.DiscountModePerUnit, nil)
	p := product("Widget", 1000, 5)
	s.AddItem(p)

	// no upper bound: a per-unit discount above the price is legal input
	s.UpdateDiscountPerUnit(p.ID, decimal.NewFromInt(1500))
	items := s.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].DiscountPerUnit.Equal(decimal.NewFromInt(1500)))

	s.UpdateDiscountPerUnit(p.ID, decimal.NewFromInt(-5))
	items = s.Items()
	assert.True(t, items[0].DiscountPerUnit.IsZero())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(enum.DiscountModePercent, nil)
	s.AddItem(product("A", 10, 1))
	s.AddItem(product("B", 20, 1))

	s.Clear()

	assert.Empty(t, s.Items())
	totals := s.Totals()
	assert.True(t, totals.Subtotal.IsZero())
	assert.Zero(t, totals.ItemsCount)
}

func TestStore_Load(t *testing.T) {
	s := NewStore(enum.DiscountModePercent, nil)
	s.AddItem(product("Old", 10, 1))

	replacement := []LineItem{
		{ProductID: uuid.New(), Name: "X", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
		{ProductID: uuid.New(), Name: "Y", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(300)},
	}
	s.Load(replacement)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, replacement[0].ProductID, items[0].ProductID)
	assert.Equal(t, replacement[1].ProductID, items[1].ProductID)

	// loaded lines are indexed and editable like any other
	s.UpdateQuantity(replacement[1].ProductID, decimal.NewFromInt(4))
	items = s.Items()
	assert.True(t, items[1].Quantity.Equal(decimal.NewFromInt(4)))
}

func TestStore_SerializeRoundTrip(t *testing.T) {
	s := NewStore(enum.DiscountModePerUnit, nil)
	a, b := product("A", 1000, 5), product("B", 250, 3)
	s.AddItem(a)
	s.AddItem(a)
	s.AddItem(b)
	s.UpdateDiscountPerUnit(a.ID, decimal.NewFromInt(100))

	payload, err := MarshalItems(s.Items())
	require.NoError(t, err)

	restored, err := UnmarshalItems(payload)
	require.NoError(t, err)

	fresh := NewStore(enum.DiscountModePerUnit, nil)
	fresh.Load(restored)

	want := s.Items()
	got := fresh.Items()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ProductID, got[i].ProductID)
		assert.True(t, got[i].Quantity.Equal(want[i].Quantity))
		assert.True(t, got[i].UnitPrice.Equal(want[i].UnitPrice))
		assert.True(t, got[i].DiscountPerUnit.Equal(want[i].DiscountPerUnit))
		assert.True(t, got[i].AvailableStock.Equal(want[i].AvailableStock))
	}
	assert.True(t, fresh.Totals().FinalTotal.Equal(s.Totals().FinalTotal))
}

func TestStore_ListenerNotifiedAfterEveryMutation(t *testing.T) {
	var calls int
	var lastLen int
	var lastMode enum.DiscountMode

	s := NewStore(enum.DiscountModePercent, func(items []LineItem, mode enum.DiscountMode) {
		calls++
		lastLen = len(items)
		lastMode = mode
	})

	p := product("Widget", 1000, 5)
	s.AddItem(p)
	s.UpdateQuantity(p.ID, decimal.NewFromInt(3))
	s.RemoveItem(p.ID)

	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, lastLen)
	assert.Equal(t, enum.DiscountModePercent, lastMode)

	// reads never notify
	s.Items()
	s.Totals()
	assert.Equal(t, 3, calls)

	// a no-op remove does not notify either
	s.RemoveItem(uuid.New())
	assert.Equal(t, 3, calls)
}

func TestStore_ListenerCanReadBackIntoStore(t *testing.T) {
	var seen Totals
	var s *Store
	s = NewStore(enum.DiscountModePercent, func(items []LineItem, mode enum.DiscountMode) {
		// the listener runs outside the lock, so re-entry must not deadlock
		seen = s.Totals()
	})

	p := product("Widget", 1000, 5)
	s.AddItem(p)

	assert.True(t, seen.Subtotal.Equal(decimal.NewFromInt(1000)))
}
