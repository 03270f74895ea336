package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/salepointhq/salepoint-api/internal/domain/cart"
	"github.com/salepointhq/salepoint-api/internal/domain/entity"
	"github.com/salepointhq/salepoint-api/internal/domain/enum"
	"github.com/salepointhq/salepoint-api/internal/domain/repository"
	"github.com/salepointhq/salepoint-api/pkg/apperror"
)

// mirrorTimeout bounds the fire-and-forget snapshot write.
const mirrorTimeout = 5 * time.Second

// CartService owns one line item store per active session, mirrors every
// mutation to the durable snapshot slot, and runs the submission flow. Stores
// are created lazily and restored from the slot on first touch.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*cart.Store

	snapshotRepo repository.CartSnapshotRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	hydrator     *CartHydrator
	log          zerolog.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	snapshotRepo repository.CartSnapshotRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	hydrator *CartHydrator,
	log zerolog.Logger,
) *CartService {
	return &CartService{
		carts:        make(map[string]*cart.Store),
		snapshotRepo: snapshotRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		hydrator:     hydrator,
		log:          log,
	}
}

// CartView is the read model exposed to the UI: the ordered items plus the
// derived totals and stock flags, recomputed on every read.
type CartView struct {
	Items        []cart.LineItem      `json:"items"`
	Totals       cart.Totals          `json:"totals"`
	StockErrors  []cart.LineItem      `json:"stock_errors"`
	Lines        []cart.LineBreakdown `json:"lines,omitempty"`
	DiscountMode enum.DiscountMode    `json:"discount_mode"`
}

// View returns the current cart state for a session.
func (s *CartService) View(ctx context.Context, sessionID string) *CartView {
	return s.view(s.store(ctx, sessionID))
}

func (s *CartService) view(st *cart.Store) *CartView {
	items := st.Items()
	mode := st.Mode()
	view := &CartView{
		Items:        items,
		Totals:       cart.ComputeTotals(items, mode),
		StockErrors:  cart.StockErrors(items),
		DiscountMode: mode,
	}
	if mode == enum.DiscountModePerUnit {
		view.Lines = cart.ComputeLineBreakdowns(items)
	}
	return view
}

// AddProduct fetches the product and its disposable quantity at the stock
// location, then adds it to the session's cart (or increments an existing
// line).
func (s *CartService) AddProduct(ctx context.Context, sessionID string, productID, stockID uuid.UUID) (*CartView, error) {
	product, available, err := s.productRepo.GetWithStock(ctx, productID, stockID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	st := s.store(ctx, sessionID)
	st.AddItem(cart.ProductInfo{
		ID:             product.ID,
		Name:           product.Name,
		Code:           product.Code,
		Unit:           product.Unit,
		SalePrice:      product.SellingPrice,
		AvailableStock: available,
		Image:          product.Image,
	})
	return s.view(st), nil
}

// UpdateItemInput carries the editable line fields; nil means "leave as is".
// Values arrive already coerced (malformed input became zero at the edge).
type UpdateItemInput struct {
	Quantity        *decimal.Decimal
	UnitPrice       *decimal.Decimal
	DiscountPercent *decimal.Decimal
	DiscountPerUnit *decimal.Decimal
}

// UpdateItem applies the given field updates to one line. Quantity is applied
// last since a non-positive quantity removes the line.
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, productID uuid.UUID, input *UpdateItemInput) *CartView {
	st := s.store(ctx, sessionID)
	if input.UnitPrice != nil {
		st.UpdatePrice(productID, *input.UnitPrice)
	}
	if input.DiscountPercent != nil {
		st.UpdateDiscountPercent(productID, *input.DiscountPercent)
	}
	if input.DiscountPerUnit != nil {
		st.UpdateDiscountPerUnit(productID, *input.DiscountPerUnit)
	}
	if input.Quantity != nil {
		st.UpdateQuantity(productID, *input.Quantity)
	}
	return s.view(st)
}

// RemoveItem deletes one line; removing an absent product is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) *CartView {
	st := s.store(ctx, sessionID)
	st.RemoveItem(productID)
	return s.view(st)
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) *CartView {
	st := s.store(ctx, sessionID)
	st.Clear()
	return s.view(st)
}

// HydrateFromOrder rebuilds the session's cart from a saved order. The
// resulting cart works in per-unit discount amounts, the shape saved lines
// carry.
func (s *CartService) HydrateFromOrder(ctx context.Context, sessionID string, orderID uuid.UUID) (*CartView, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	items := s.hydrator.Hydrate(ctx, order)

	st := s.store(ctx, sessionID)
	st.SetMode(enum.DiscountModePerUnit)
	st.Load(items)
	return s.view(st), nil
}

// SubmitOrderInput is the submission payload for the working cart.
type SubmitOrderInput struct {
	CustomerID   *uuid.UUID
	StockID      uuid.UUID
	DocumentType enum.DocumentType
	Notes        *string
}

// Submit turns the session's cart into a persisted order. Over-stock lines
// and negative prices block submission; on success the working set is cleared
// and the durable slot removed.
func (s *CartService) Submit(ctx context.Context, sessionID string, input *SubmitOrderInput) (*entity.Order, error) {
	st := s.store(ctx, sessionID)
	items := st.Items()
	if len(items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	if offenders := cart.StockErrors(items); len(offenders) > 0 {
		fieldErrors := make([]apperror.FieldError, 0, len(offenders))
		for _, li := range offenders {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   li.ProductID.String(),
				Message: fmt.Sprintf("requested quantity %s exceeds available stock %s", li.Quantity, li.AvailableStock),
			})
		}
		return nil, apperror.NewStockError(fieldErrors)
	}

	var priceErrors []apperror.FieldError
	for _, li := range items {
		if li.UnitPrice.IsNegative() {
			priceErrors = append(priceErrors, apperror.FieldError{
				Field:   li.ProductID.String(),
				Message: "unit price must not be negative",
			})
		}
	}
	if len(priceErrors) > 0 {
		return nil, apperror.NewValidationError(priceErrors)
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	mode := st.Mode()
	totals := cart.ComputeTotals(items, mode)

	nextNum, err := s.orderRepo.GetNextReferenceNumber(ctx, input.DocumentType)
	if err != nil {
		return nil, err
	}
	prefix := "SO"
	if input.DocumentType == enum.DocumentTypeProforma {
		prefix = "PF"
	}

	order := &entity.Order{
		CustomerID:    input.CustomerID,
		StockID:       input.StockID,
		Reference:     fmt.Sprintf("%s-%06d", prefix, nextNum),
		DocumentType:  input.DocumentType,
		DiscountMode:  mode,
		Status:        enum.OrderStatusSubmitted,
		OrderDate:     time.Now(),
		SubTotal:      totals.Subtotal,
		DiscountTotal: totals.DiscountTotal,
		Total:         totals.FinalTotal,
		Notes:         input.Notes,
	}
	for _, li := range items {
		order.Details = append(order.Details, entity.OrderDetail{
			ProductID:      li.ProductID,
			ProductName:    li.Name,
			ProductCode:    li.Code,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			DiscountAmount: li.DiscountAmountPerUnit(mode),
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// The server owns the order now; the working set and its slot go away.
	st.Clear()
	if err := s.snapshotRepo.Delete(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session", sessionID).Msg("failed to delete cart snapshot after submission")
	}

	return order, nil
}

// store returns the session's line item store, creating and restoring it on
// first touch.
func (s *CartService) store(ctx context.Context, sessionID string) *cart.Store {
	s.mu.Lock()
	if st, ok := s.carts[sessionID]; ok {
		s.mu.Unlock()
		return st
	}
	st := cart.NewStore(enum.DiscountModePercent, s.mirror(sessionID))
	s.carts[sessionID] = st
	s.mu.Unlock()

	s.restore(ctx, sessionID, st)
	return st
}

// restore reads the durable slot once at session start. A missing or
// unparsable slot yields an empty cart; the failure is logged, never fatal.
func (s *CartService) restore(ctx context.Context, sessionID string, st *cart.Store) {
	snapshot, err := s.snapshotRepo.Get(ctx, sessionID)
	if err != nil {
		s.log.Warn().Err(err).Str("session", sessionID).Msg("cart snapshot read failed, starting empty")
		return
	}
	if snapshot == nil {
		return
	}

	items, err := cart.UnmarshalItems(snapshot.Payload)
	if err != nil {
		s.log.Warn().Err(err).Str("session", sessionID).Msg("cart snapshot unparsable, starting empty")
		return
	}

	st.SetMode(snapshot.DiscountMode)
	st.Load(items)
}

// mirror builds the store listener that keeps the durable slot in sync. The
// write is fire-and-forget relative to the triggering command: losing it
// degrades to "cart not restored next session", so failures are logged and
// swallowed.
func (s *CartService) mirror(sessionID string) cart.Listener {
	return func(items []cart.LineItem, mode enum.DiscountMode) {
		go func() {
			payload, err := cart.MarshalItems(items)
			if err != nil {
				s.log.Error().Err(err).Str("session", sessionID).Msg("failed to serialize cart snapshot")
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
			defer cancel()

			err = s.snapshotRepo.Save(ctx, &entity.CartSnapshot{
				SessionID:    sessionID,
				Payload:      payload,
				DiscountMode: mode,
			})
			if err != nil {
				s.log.Warn().Err(err).Str("session", sessionID).Msg("cart mirror write failed")
			}
		}()
	}
}
