package main

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Innovora/internal/catalog"
	"Innovora/internal/newsletter"
	"Innovora/internal/storefront"
	"Innovora/pkg/kit"
)

type config struct {
	Port         string `default:"8080"`
	StoreBackend string `split_words:"true" default:"memory"`
	DatabaseURL  string `split_words:"true"`

	MetricsEnabled bool   `split_words:"true"`
	MetricsToken   string `split_words:"true"`

	SignupLimit  int `split_words:"true" default:"10"`
	SignupWindow int `split_words:"true" default:"60"`
}

func main() {
	service := "storefront"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("config", zap.Error(err))
	}

	deps, err := buildStores(cfg, log)
	if err != nil {
		log.Fatal("init stores failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		SignupLimit:    cfg.SignupLimit,
		SignupWindow:   cfg.SignupWindow,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildStores(cfg config, log *zap.Logger) (storefront.Deps, error) {
	switch cfg.StoreBackend {
	case "postgres":
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return storefront.Deps{}, err
		}
		log.Info("using postgres store")
		return storefront.Deps{
			Catalog:    catalog.NewPostgresStore(db),
			Newsletter: newsletter.NewPostgresStore(db),
		}, nil

	default:
		store := catalog.NewMemStore()
		if err := catalog.Populate(context.Background(), store, catalog.SeedCategories(), catalog.SeedProducts()); err != nil {
			return storefront.Deps{}, err
		}
		log.Info("using in-memory store", zap.String("backend", cfg.StoreBackend))
		return storefront.Deps{
			Catalog:    store,
			Newsletter: newsletter.NewMemStore(),
		}, nil
	}
}
