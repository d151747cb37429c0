// Package storefront assembles the public API out of the catalog and
// newsletter services, the way the client consumes it: everything under
// /api plus the operational endpoints.
package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Innovora/internal/catalog"
	"Innovora/internal/newsletter"
	"Innovora/pkg/kit"
)

type Deps struct {
	Catalog    catalog.Store
	Newsletter newsletter.Store
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// Signup abuse guard; zero limit disables it.
	SignupLimit  int
	SignupWindow int
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: httpDeps.Log}
	newsSrv := &newsletter.Server{Store: deps.Newsletter, Log: httpDeps.Log}

	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(deps.Catalog, httpDeps.Log))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/", catalogSrv.Routes())

		if httpDeps.SignupLimit > 0 {
			limiter := kit.NewIPRateLimiter(httpDeps.SignupLimit, httpDeps.SignupWindow)
			api.With(limiter.Middleware).Mount("/newsletter", newsSrv.Routes())
		} else {
			api.Mount("/newsletter", newsSrv.Routes())
		}
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
	r.Use(kit.CORS)
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func readyz(store catalog.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
