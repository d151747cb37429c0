package catalog_test

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"Innovora/internal/catalog"
)

func newSeededStore(t *testing.T) *catalog.MemStore {
	t.Helper()

	s := catalog.NewMemStore()
	if err := catalog.Populate(context.Background(), s, catalog.SeedCategories(), catalog.SeedProducts()); err != nil {
		t.Fatalf("populate: %v", err)
	}
	return s
}

func TestSeed_Shape(t *testing.T) {
	cats := catalog.SeedCategories()
	if len(cats) != 4 {
		t.Fatalf("categories=%d want 4", len(cats))
	}

	wantSlugs := map[string]bool{
		"feminine-care": false,
		"gaming-tech":   false,
		"kids-learning": false,
		"fitness-gear":  false,
	}
	for _, c := range cats {
		seen, ok := wantSlugs[c.Slug]
		if !ok {
			t.Fatalf("unexpected slug %q", c.Slug)
		}
		if seen {
			t.Fatalf("duplicate slug %q", c.Slug)
		}
		wantSlugs[c.Slug] = true
	}

	prods := catalog.SeedProducts()
	if len(prods) != 8 {
		t.Fatalf("products=%d want 8", len(prods))
	}
	for _, p := range prods {
		if !containsKey(wantSlugs, p.Category) {
			t.Fatalf("product %q references unknown category %q", p.Name, p.Category)
		}
		if p.InStock < 0 {
			t.Fatalf("product %q has negative stock", p.Name)
		}
	}
}

func containsKey(m map[string]bool, k string) bool {
	_, ok := m[k]
	return ok
}

func TestMemStore_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	created, err := s.CreateProduct(ctx, catalog.NewProduct{
		Name:        "Foam Roller",
		Description: "High-density foam roller for recovery.",
		Price:       "19.99",
		Category:    "fitness-gear",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("empty id")
	}

	got, ok, err := s.GetProductByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("created product not found")
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("got=%+v want=%+v", got, created)
	}
}

func TestMemStore_CreateProduct_Defaults(t *testing.T) {
	ctx := context.Background()
	s := catalog.NewMemStore()

	p, err := s.CreateProduct(ctx, catalog.NewProduct{
		Name:  "Bare Product",
		Price: "1.00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.InStock != 0 {
		t.Fatalf("inStock=%d want 0", p.InStock)
	}
	if p.Features == nil || len(p.Features) != 0 {
		t.Fatalf("features=%#v want empty non-nil slice", p.Features)
	}
}

func TestMemStore_GetCategoryBySlug_NotFoundIsNotAnError(t *testing.T) {
	s := newSeededStore(t)

	_, ok, err := s.GetCategoryBySlug(context.Background(), "no-such-slug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("found a category for an unknown slug")
	}
}

func TestMemStore_ListsSortedByName(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	cats, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) == 0 {
		t.Fatalf("no categories")
	}
	if !sort.SliceIsSorted(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name }) {
		t.Fatalf("categories not sorted by name: %+v", names(cats))
	}

	prods, err := s.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	for i := 1; i < len(prods); i++ {
		if prods[i-1].Name > prods[i].Name {
			t.Fatalf("products not sorted: %q > %q", prods[i-1].Name, prods[i].Name)
		}
	}
}

func names(cats []catalog.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

func TestMemStore_ListProductsByCategory(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	prods, err := s.ListProductsByCategory(ctx, "feminine-care")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(prods) != 2 {
		t.Fatalf("len=%d want 2", len(prods))
	}
	for _, p := range prods {
		if p.Category != "feminine-care" {
			t.Fatalf("product %q has category %q", p.Name, p.Category)
		}
	}

	empty, err := s.ListProductsByCategory(ctx, "unknown-slug")
	if err != nil {
		t.Fatalf("list by unknown category: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %d", len(empty))
	}
}

func TestMemStore_SearchProducts(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	lower, err := s.SearchProducts(ctx, "gaming")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	upper, err := s.SearchProducts(ctx, "GAMING")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !sameIDs(lower, upper) {
		t.Fatalf("case-sensitive results: %d vs %d", len(lower), len(upper))
	}
	if len(lower) == 0 {
		t.Fatalf("no results for gaming")
	}

	// Result must be a subset of the full listing, and searching twice
	// must not change it.
	all, err := s.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	allIDs := make(map[string]bool, len(all))
	for _, p := range all {
		allIDs[p.ID] = true
	}
	for _, p := range lower {
		if !allIDs[p.ID] {
			t.Fatalf("search result %q not in ListProducts", p.Name)
		}
	}

	again, err := s.SearchProducts(ctx, "gaming")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !sameIDs(lower, again) {
		t.Fatalf("search not idempotent")
	}
}

func TestMemStore_SearchProducts_EmptyQueryReturnsAll(t *testing.T) {
	ctx := context.Background()
	s := newSeededStore(t)

	got, err := s.SearchProducts(ctx, "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	all, err := s.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(all) {
		t.Fatalf("empty query returned %d of %d products", len(got), len(all))
	}
}

func TestMemStore_DuplicateSlugFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	s := catalog.NewMemStore()

	first, err := s.CreateCategory(ctx, catalog.NewCategory{Name: "First", Slug: "dup"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateCategory(ctx, catalog.NewCategory{Name: "Second", Slug: "dup"}); err != nil {
		t.Fatalf("create duplicate: %v", err)
	}

	got, ok, err := s.GetCategoryBySlug(ctx, "dup")
	if err != nil || !ok {
		t.Fatalf("lookup: ok=%v err=%v", ok, err)
	}
	if got.ID != first.ID {
		t.Fatalf("lookup returned %q, want first-created %q", got.Name, first.Name)
	}
}

func sameIDs(a, b []catalog.Product) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]bool, len(a))
	for _, p := range a {
		ids[p.ID] = true
	}
	for _, p := range b {
		if !ids[p.ID] {
			return false
		}
	}
	return true
}
