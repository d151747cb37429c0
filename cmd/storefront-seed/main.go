// One-shot population of the Postgres catalog tables with the launch
// seed set. Run it once against a fresh database; it does not check for
// existing rows.
package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"Innovora/internal/catalog"
	"Innovora/pkg/kit"
)

func main() {
	log := kit.NewLogger("storefront-seed")
	defer func() { _ = log.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal("open database failed", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("database unreachable", zap.Error(err))
	}

	store := catalog.NewPostgresStore(db)

	cats := catalog.SeedCategories()
	prods := catalog.SeedProducts()

	if err := catalog.Populate(ctx, store, cats, prods); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	log.Info("seeded catalog",
		zap.Int("categories", len(cats)),
		zap.Int("products", len(prods)),
	)
}
