package service

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/shihankaari/coffee-ordering/internal/model"
)

type CatalogService struct {
	mu       sync.RWMutex
	products map[string]model.Product
	menu     []string
}

func NewCatalogService() *CatalogService {
	service := &CatalogService{
		products: make(map[string]model.Product),
	}

	service.SetProduct("Espresso", decimal.NewFromFloat(2.5))
	service.SetProduct("Latte", decimal.NewFromFloat(3.5))
	service.SetProduct("Cappuccino", decimal.NewFromFloat(3.0))
	service.SetProduct("Americano", decimal.NewFromFloat(2.0))

	return service
}

func (s *CatalogService) SetProduct(name string, basePrice decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := s.products[key]; !exists {
		s.menu = append(s.menu, key)
	}
	s.products[key] = model.Product{Name: name, BasePrice: basePrice}
}

// Products returns the menu in insertion order.
func (s *CatalogService) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.menu))
	for _, key := range s.menu {
		products = append(products, s.products[key])
	}

	return products
}

func (s *CatalogService) Get(name string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[strings.ToLower(name)]
	return product, exists
}

// PriceFor returns the product's base price adjusted for size. It never
// fails: an unrecognized size yields the base price unchanged.
func (s *CatalogService) PriceFor(product model.Product, size model.Size) decimal.Decimal {
	return product.BasePrice.Add(size.Delta())
}
