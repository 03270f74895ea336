package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salepointhq/salepoint-api/internal/domain/enum"
)

// Listener receives the full item list after every successful mutation. The
// persistence mirror hangs off this hook; the store itself never touches
// storage.
type Listener func(items []LineItem, mode enum.DiscountMode)

// Store holds the ordered product -> line mapping for one editing session and
// applies one command at a time. ProductID is unique across the set and
// insertion order is the display order. Commands never fail: malformed numeric
// input is coerced before it reaches the store, and business-rule violations
// (over-stock, over-discount) are derived flags, not errors.
type Store struct {
	mu       sync.Mutex
	items    []LineItem
	index    map[uuid.UUID]int
	mode     enum.DiscountMode
	listener Listener
}

// NewStore creates an empty store for the given discount mode. listener may
// be nil.
func NewStore(mode enum.DiscountMode, listener Listener) *Store {
	return &Store{
		index:    make(map[uuid.UUID]int),
		mode:     mode,
		listener: listener,
	}
}

// AddItem appends a new line for the product with quantity 1, price seeded
// from the list sale price and the stock snapshot from the current disposable
// quantity. If the product is already present its quantity is incremented by
// one instead; the incoming price and stock figures are ignored so the line
// keeps the values captured when it was first added.
func (s *Store) AddItem(p ProductInfo) {
	s.mu.Lock()
	if i, ok := s.index[p.ID]; ok {
		s.items[i].Quantity = s.items[i].Quantity.Add(decimal.NewFromInt(1))
	} else {
		s.index[p.ID] = len(s.items)
		s.items = append(s.items, LineItem{
			ProductID:       p.ID,
			Name:            p.Name,
			Code:            p.Code,
			Unit:            p.Unit,
			Quantity:        decimal.NewFromInt(1),
			UnitPrice:       p.SalePrice,
			DiscountPercent: decimal.Zero,
			DiscountPerUnit: decimal.Zero,
			AvailableStock:  p.AvailableStock,
			Image:           p.Image,
		})
	}
	s.finish()
}

// RemoveItem deletes the line if present. Removing an absent product is a
// no-op, not an error.
func (s *Store) RemoveItem(productID uuid.UUID) {
	s.mu.Lock()
	if !s.removeLocked(productID) {
		s.mu.Unlock()
		return
	}
	s.finish()
}

// UpdateQuantity replaces the line's quantity. A value of zero or below
// removes the line rather than leaving a zero-quantity row.
func (s *Store) UpdateQuantity(productID uuid.UUID, quantity decimal.Decimal) {
	s.mu.Lock()
	i, ok := s.index[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		s.removeLocked(productID)
	} else {
		s.items[i].Quantity = quantity
	}
	s.finish()
}

// UpdatePrice replaces the line's unit price as given. Negative prices are
// accepted here; rejecting them is the submission flow's concern.
func (s *Store) UpdatePrice(productID uuid.UUID, price decimal.Decimal) {
	s.mu.Lock()
	i, ok := s.index[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.items[i].UnitPrice = price
	s.finish()
}

// UpdateDiscountPercent replaces the percentage discount, clamped to [0,100].
func (s *Store) UpdateDiscountPercent(productID uuid.UUID, percent decimal.Decimal) {
	s.mu.Lock()
	i, ok := s.index[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.items[i].DiscountPercent = clampPercent(percent)
	s.finish()
}

// UpdateDiscountPerUnit replaces the fixed per-unit discount, clamped to >= 0.
func (s *Store) UpdateDiscountPerUnit(productID uuid.UUID, amount decimal.Decimal) {
	s.mu.Lock()
	i, ok := s.index[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.items[i].DiscountPerUnit = clampNonNegative(amount)
	s.finish()
}

// Clear empties the item set unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.index = make(map[uuid.UUID]int)
	s.finish()
}

// Load replaces the entire item set with the given list verbatim. Callers are
// responsible for supplying well-formed lines; both the snapshot restore path
// and remote hydration come through here, so a load is durably mirrored
// immediately like any other mutation.
func (s *Store) Load(items []LineItem) {
	s.mu.Lock()
	s.items = make([]LineItem, len(items))
	copy(s.items, items)
	s.index = make(map[uuid.UUID]int, len(items))
	for i, li := range s.items {
		s.index[li.ProductID] = i
	}
	s.finish()
}

// SetMode switches the discount interpretation for this session. Editing a
// saved order flips the store to per-unit amounts before hydration loads it.
func (s *Store) SetMode(mode enum.DiscountMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

// Mode returns the session's discount mode.
func (s *Store) Mode() enum.DiscountMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Items returns a copy of the ordered item list.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Totals derives the financial totals from the current item set. Nothing is
// cached; every read recomputes from scratch.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	items, mode := s.snapshotLocked(), s.mode
	s.mu.Unlock()
	return ComputeTotals(items, mode)
}

// StockErrors derives the lines whose quantity exceeds their stock snapshot.
func (s *Store) StockErrors() []LineItem {
	return StockErrors(s.Items())
}

// removeLocked deletes the line and reindexes the tail. Item sets are bounded
// by a cart's practical size, so the rebuild is cheap.
func (s *Store) removeLocked(productID uuid.UUID) bool {
	i, ok := s.index[productID]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, productID)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ProductID] = j
	}
	return true
}

func (s *Store) snapshotLocked() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// finish releases the lock and notifies the listener with a snapshot of the
// new state. The listener runs outside the lock so a mirror can call back
// into the store without deadlocking.
func (s *Store) finish() {
	snap, mode := s.snapshotLocked(), s.mode
	s.mu.Unlock()
	if s.listener != nil {
		s.listener(snap, mode)
	}
}
