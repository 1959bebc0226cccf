package service

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/shihankaari/coffee-ordering/internal/model"
)

var (
	discountThreshold = decimal.NewFromInt(50)
	discountRate      = decimal.NewFromFloat(0.1)
)

// OrderService holds the cart for one customer session. The customer
// identity is assigned at construction and survives Clear, so the same
// session can run several checkouts.
type OrderService struct {
	mu    sync.RWMutex
	order *model.Order
}

func NewOrderService(ids IDGenerator, firstName, lastName, email string) *OrderService {
	return &OrderService{
		order: &model.Order{
			CustomerID: ids.NextID(),
			FirstName:  firstName,
			LastName:   lastName,
			Email:      email,
		},
	}
}

// AddItem validates the selection and appends a line item priced via the
// catalog. Rejections leave the cart untouched.
func (s *OrderService) AddItem(catalog *CatalogService, product model.Product, size model.Size, quantity int) (*model.LineItem, error) {
	switch size {
	case model.SizeSmall, model.SizeMedium, model.SizeLarge:
	default:
		return nil, &model.ValidationError{Field: "size", Reason: "must be small, medium or large"}
	}

	if quantity < 1 {
		return nil, &model.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.LineItem{
		Name:      product.Name,
		Size:      size,
		UnitPrice: catalog.PriceFor(product, size),
		Quantity:  quantity,
	}

	s.order.Items = append(s.order.Items, item)
	return &item, nil
}

func (s *OrderService) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subtotal()
}

// Discount is 10% of the subtotal once it reaches 50.00, zero below that.
// The threshold is inclusive.
func (s *OrderService) Discount() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.discount()
}

func (s *OrderService) FinalTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subtotal().Sub(s.discount())
}

func (s *OrderService) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.order.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (s *OrderService) discount() decimal.Decimal {
	subtotal := s.subtotal()
	if subtotal.GreaterThanOrEqual(discountThreshold) {
		return subtotal.Mul(discountRate)
	}
	return decimal.Zero
}

func (s *OrderService) Items() []model.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.LineItem, len(s.order.Items))
	copy(items, s.order.Items)
	return items
}

func (s *OrderService) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order.Items) == 0
}

// Order returns a snapshot of the current order.
func (s *OrderService) Order() *model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := *s.order
	snapshot.Items = make([]model.LineItem, len(s.order.Items))
	copy(snapshot.Items, s.order.Items)
	return &snapshot
}

// Clear empties the cart. Customer identity fields are kept.
func (s *OrderService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Items = nil
}
