package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore reads the catalog from the categories and products
// tables. Concurrency control is the table engine's problem; every call
// is a single bounded query.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, name, slug, description, image
			FROM categories
			ORDER BY name ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Category, 0, 8)
		for rows.Next() {
			var c Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image); err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *PostgresStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	var c Category

	// ORDER BY id keeps the first-match rule deterministic when the
	// slug is duplicated.
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, name, slug, description, image
			FROM categories
			WHERE slug = $1
			ORDER BY id ASC
			LIMIT 1
		`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image)
	})

	if err == sql.ErrNoRows {
		return Category{}, false, nil
	}
	if err != nil {
		return Category{}, false, storageErr(err)
	}
	return c, true, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, nc NewCategory) (Category, error) {
	c := buildCategory(nc)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO categories (id, name, slug, description, image)
			VALUES ($1, $2, $3, $4, $5)
		`, c.ID, c.Name, c.Slug, c.Description, c.Image)
		return err
	})

	if err != nil {
		return Category{}, storageErr(err)
	}
	return c, nil
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx, `
		SELECT id, name, description, price, category, image, in_stock, features
		FROM products
		ORDER BY name ASC
	`)
}

func (s *PostgresStore) GetProductByID(ctx context.Context, id string) (Product, bool, error) {
	var (
		p   Product
		raw []byte
	)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, name, description, price, category, image, in_stock, features
			FROM products
			WHERE id = $1
		`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image, &p.InStock, &raw)
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, storageErr(err)
	}

	if err := unmarshalFeatures(raw, &p); err != nil {
		return Product{}, false, storageErr(err)
	}
	return p, true, nil
}

func (s *PostgresStore) ListProductsByCategory(ctx context.Context, slug string) ([]Product, error) {
	return s.queryProducts(ctx, `
		SELECT id, name, description, price, category, image, in_stock, features
		FROM products
		WHERE category = $1
		ORDER BY id ASC
	`, slug)
}

func (s *PostgresStore) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	pattern := "%" + query + "%"
	return s.queryProducts(ctx, `
		SELECT id, name, description, price, category, image, in_stock, features
		FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY id ASC
	`, pattern)
}

func (s *PostgresStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	p := buildProduct(np)

	features, err := json.Marshal(p.Features)
	if err != nil {
		return Product{}, storageErr(err)
	}

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO products (id, name, description, price, category, image, in_stock, features)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.ID, p.Name, p.Description, p.Price, p.Category, p.Image, p.InStock, features)
		return err
	})

	if err != nil {
		return Product{}, storageErr(err)
	}
	return p, nil
}

func (s *PostgresStore) queryProducts(ctx context.Context, q string, args ...any) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			var (
				p   Product
				raw []byte
			)
			if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image, &p.InStock, &raw); err != nil {
				return err
			}
			if err := unmarshalFeatures(raw, &p); err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func unmarshalFeatures(raw []byte, p *Product) error {
	if len(raw) == 0 {
		p.Features = []string{}
		return nil
	}
	if err := json.Unmarshal(raw, &p.Features); err != nil {
		return err
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return nil
}

func storageErr(cause error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, cause)
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
