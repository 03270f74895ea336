package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/internal/domain/enum"
	"github.com/salepointhq/salepoint-api/internal/domain/repository"
)

// fakeProductRepo serves products and stock figures from in-memory maps.
// Lookups for IDs listed in failIDs return the injected error.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	stock    map[uuid.UUID]decimal.Decimal
	failIDs  map[uuid.UUID]error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[uuid.UUID]*entity.Product),
		stock:    make(map[uuid.UUID]decimal.Decimal),
		failIDs:  make(map[uuid.UUID]error),
	}
}

func (f *fakeProductRepo) add(p *entity.Product, available decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
	f.stock[p.ID] = available
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.add(product, decimal.Zero)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products[id], nil
}

func (f *fakeProductRepo) Search(ctx context.Context, params *repository.ProductFilterParams) ([]repository.ProductWithStock, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.ProductWithStock
	for id, p := range f.products {
		out = append(out, repository.ProductWithStock{Product: *p, AvailableStock: f.stock[id]})
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetWithStock(ctx context.Context, productID, stockID uuid.UUID) (*entity.Product, decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failIDs[productID]; ok {
		return nil, decimal.Zero, err
	}
	p, ok := f.products[productID]
	if !ok {
		return nil, decimal.Zero, nil
	}
	return p, f.stock[productID], nil
}

// fakeSnapshotRepo is an in-memory single-slot mirror. The mirror listener
// writes from its own goroutine, so every access takes the lock.
type fakeSnapshotRepo struct {
	mu      sync.Mutex
	slots   map[string]*entity.CartSnapshot
	getErr  error
	saves   int
	deletes int
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{slots: make(map[string]*entity.CartSnapshot)}
}

func (f *fakeSnapshotRepo) Save(ctx context.Context, snapshot *entity.CartSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.slots[snapshot.SessionID] = snapshot
	return nil
}

func (f *fakeSnapshotRepo) Get(ctx context.Context, sessionID string) (*entity.CartSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slots[sessionID], nil
}

func (f *fakeSnapshotRepo) Delete(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.slots, sessionID)
	return nil
}

func (f *fakeSnapshotRepo) saved(sessionID string) *entity.CartSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots[sessionID]
}

func (f *fakeSnapshotRepo) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}

// fakeCustomerRepo serves customers from an in-memory map.
type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

// fakeOrderRepo captures created orders and serves preset ones.
type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]*entity.Order
	created []*entity.Order
	nextRef int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order), nextRef: 1}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) GetNextReferenceNumber(ctx context.Context, docType enum.DocumentType) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nextRef, nil
}
