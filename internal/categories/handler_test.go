package categories

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return payload, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func newCachedRouter(repo Repository, c *memoryCache) *chi.Mux {
	svc := NewService(repo, &fakeDetacher{}, time.UTC)
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(svc, validation.New(), log, c, time.Minute)

	router := chi.NewRouter()
	router.Post("/api/v1/categories", h.Create)
	router.Get("/api/v1/categories", h.List)
	router.Get("/api/v1/categories/{id}", h.Get)
	router.Put("/api/v1/categories/{id}", h.Update)
	router.Delete("/api/v1/categories/{id}", h.Delete)
	return router
}

func listCategories(t *testing.T, router *chi.Mux) []Category {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got status %d (body %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Items []Category `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return body.Items
}

func TestListUsesCacheUntilWrite(t *testing.T) {
	repo := newFakeRepo()
	c := newMemoryCache()
	router := newCachedRouter(repo, c)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader([]byte(`{"name":"Laptops"}`))))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got status %d (body %s)", rec.Code, rec.Body.String())
	}

	if items := listCategories(t, router); len(items) != 1 {
		t.Fatalf("expected 1 category, got %d", len(items))
	}
	if c.hits != 0 {
		t.Fatalf("first list should miss the cache")
	}

	if items := listCategories(t, router); len(items) != 1 {
		t.Fatalf("expected 1 category, got %d", len(items))
	}
	if c.hits != 1 {
		t.Fatalf("second list should hit the cache, hits=%d", c.hits)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader([]byte(`{"name":"Monitors"}`))))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got status %d (body %s)", rec.Code, rec.Body.String())
	}

	if items := listCategories(t, router); len(items) != 2 {
		t.Fatalf("list after write should reflect the new category, got %d items", len(items))
	}
}

func TestDeleteReportsDetachedCount(t *testing.T) {
	repo := newFakeRepo()
	c := newMemoryCache()

	svc := NewService(repo, &fakeDetacher{detached: 2}, time.UTC)
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(svc, validation.New(), log, c, time.Minute)

	router := chi.NewRouter()
	router.Post("/api/v1/categories", h.Create)
	router.Delete("/api/v1/categories/{id}", h.Delete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader([]byte(`{"name":"Laptops"}`))))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got status %d (body %s)", rec.Code, rec.Body.String())
	}
	var created Category
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode category: %v", err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/categories/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got status %d (body %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Status           string `json:"status"`
		ProductsDetached int64  `json:"products_detached"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "deleted" || body.ProductsDetached != 2 {
		t.Fatalf("unexpected response: %+v", body)
	}
}
