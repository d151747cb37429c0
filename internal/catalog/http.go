package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Innovora/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes serves the read side of the storefront API. Every route is
// GET-only; anything else gets a 405 with an Allow header.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(kit.MethodNotAllowed(http.MethodGet, http.MethodOptions))

	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.getProduct)
	r.Get("/categories", s.listCategories)
	r.Get("/categories/{slug}", s.getCategory)

	return r
}

// listProducts dispatches on the query string: search wins over
// category, and with neither the full catalog comes back.
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []Product
		err      error
	)

	q := r.URL.Query()
	switch {
	case q.Get("search") != "":
		products, err = s.Store.SearchProducts(r.Context(), q.Get("search"))
	case q.Get("category") != "":
		products, err = s.Store.ListProductsByCategory(r.Context(), q.Get("category"))
	default:
		products, err = s.Store.ListProducts(r.Context())
	}

	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Product ID is required")
		return
	}

	p, ok, err := s.Store.GetProductByID(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get product failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Store.ListCategories(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list categories failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	kit.WriteJSON(w, http.StatusOK, categories)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Category slug is required")
		return
	}

	c, ok, err := s.Store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get category failed", zap.Error(err), zap.String("slug", slug))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Category not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}
