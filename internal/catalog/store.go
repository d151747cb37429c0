package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUnavailable wraps any backend failure so handlers can map every
// storage problem to a single status code. The cause stays in the chain
// for logging.
var ErrUnavailable = errors.New("catalog storage unavailable")

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	InStock     int      `json:"inStock"`
	Features    []string `json:"features"`
}

type NewCategory struct {
	Name        string
	Slug        string
	Description string
	Image       string
}

type NewProduct struct {
	Name        string
	Description string
	Price       string
	Category    string
	Image       string
	InStock     int
	Features    []string
}

// Store is the catalog boundary. Both implementations satisfy the same
// contract: list results are sorted by name ascending, lookups report
// absence through the bool and reserve the error for backend failures,
// and there are no update or delete operations anywhere.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error)
	CreateCategory(ctx context.Context, nc NewCategory) (Category, error)

	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (Product, bool, error)
	ListProductsByCategory(ctx context.Context, slug string) ([]Product, error)
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	CreateProduct(ctx context.Context, np NewProduct) (Product, error)

	Ping(ctx context.Context) error
}

func buildCategory(nc NewCategory) Category {
	return Category{
		ID:          uuid.NewString(),
		Name:        nc.Name,
		Slug:        nc.Slug,
		Description: nc.Description,
		Image:       nc.Image,
	}
}

// buildProduct is the single place where optional fields get defaults:
// a nil feature list becomes an empty one so the JSON surface always
// shows an array, and stock never goes below zero.
func buildProduct(np NewProduct) Product {
	features := np.Features
	if features == nil {
		features = []string{}
	}

	inStock := np.InStock
	if inStock < 0 {
		inStock = 0
	}

	return Product{
		ID:          uuid.NewString(),
		Name:        np.Name,
		Description: np.Description,
		Price:       np.Price,
		Category:    np.Category,
		Image:       np.Image,
		InStock:     inStock,
		Features:    features,
	}
}

// Populate loads a fresh store with seed records, categories first.
func Populate(ctx context.Context, s Store, cats []NewCategory, prods []NewProduct) error {
	for _, nc := range cats {
		if _, err := s.CreateCategory(ctx, nc); err != nil {
			return err
		}
	}
	for _, np := range prods {
		if _, err := s.CreateProduct(ctx, np); err != nil {
			return err
		}
	}
	return nil
}
