package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemStore keeps the catalog in process memory. Records are held in
// insertion order so slug lookups and category filters are
// deterministic even when duplicate slugs exist.
type MemStore struct {
	mu         sync.RWMutex
	categories []Category
	products   []Product
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListCategories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, len(s.categories))
	copy(out, s.categories)

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

func (s *MemStore) CreateCategory(ctx context.Context, nc NewCategory) (Category, error) {
	c := buildCategory(nc)

	s.mu.Lock()
	s.categories = append(s.categories, c)
	s.mu.Unlock()

	return c, nil
}

func (s *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStore) GetProductByID(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

func (s *MemStore) ListProductsByCategory(ctx context.Context, slug string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, 4)
	for _, p := range s.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, 4)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	p := buildProduct(np)

	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()

	return p, nil
}
