package products

import (
	"fmt"
	"os"

	"github.com/paylens-dev/paylens/internal/model"
)

// Service provides in-memory lookup over the product catalog.
type Service struct {
	products []model.Product
	byID     map[int]model.Product
}

// NewService creates a Service from a slice of products. When the
// catalog repeats a product ID the first row wins for lookups; the
// disagreement is surfaced by Validate, not hidden here.
func NewService(products []model.Product) *Service {
	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; ok {
			continue
		}
		byID[p.ID] = p
	}
	return &Service{products: products, byID: byID}
}

// Load reads a product catalog CSV from path and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening products dataset: %w", err)
	}
	defer f.Close()

	prods, err := ReadProducts(f)
	if err != nil {
		return nil, fmt.Errorf("reading products dataset: %w", err)
	}
	return NewService(prods), nil
}

// All returns all catalog rows, duplicates included.
func (s *Service) All() []model.Product {
	return s.products
}

// Get returns a product by ID.
func (s *Service) Get(id int) (model.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// TeamOf returns the owning team for a product ID.
func (s *Service) TeamOf(id int) (string, bool) {
	p, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return p.TeamOwn, true
}
