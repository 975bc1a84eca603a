package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type fakeRepo struct {
	items map[string]OrderRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]OrderRequest)}
}

func (f *fakeRepo) Insert(ctx context.Context, item OrderRequest) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (OrderRequest, error) {
	item, ok := f.items[id]
	if !ok {
		return OrderRequest{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) List(ctx context.Context, includeHidden bool) ([]OrderRequest, error) {
	items := make([]OrderRequest, 0, len(f.items))
	for _, item := range f.items {
		if item.Hidden && !includeHidden {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (OrderRequest, error) {
	item, ok := f.items[id]
	if !ok {
		return OrderRequest{}, mongo.ErrNoDocuments
	}
	if status, ok := set["status"].(string); ok {
		item.Status = status
	}
	if hidden, ok := set["hidden"].(bool); ok {
		item.Hidden = hidden
	}
	if items, ok := set["items"].([]Item); ok {
		item.Items = items
	}
	if ts, ok := set["updated_at"].(time.Time); ok {
		item.UpdatedAt = ts
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

const testProductID = "656f1db6a3c5d2b4e8f01234"

func newTestRouter(repo Repository) *chi.Mux {
	svc := NewService(repo, time.UTC)
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(svc, validation.New(), log)

	router := chi.NewRouter()
	router.Post("/api/v1/orders", h.Create)
	router.Get("/api/v1/orders", h.List)
	router.Get("/api/v1/orders/{id}", h.Get)
	router.Put("/api/v1/orders/{id}", h.Update)
	router.Delete("/api/v1/orders/{id}", h.Delete)
	return router
}

func postOrder(t *testing.T, router *chi.Mux, req CreateRequest) OrderRequest {
	t.Helper()
	body, _ := json.Marshal(req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: got status %d (body %s)", rec.Code, rec.Body.String())
	}
	var item OrderRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	return item
}

func TestCreateStartsAsNew(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	item := postOrder(t, router, CreateRequest{
		Items: []Item{{ProductID: testProductID, Quantity: 2}},
		Name:  "An Nguyen",
		Phone: "+84912345678",
	})
	if item.Status != StatusNew {
		t.Fatalf("got status %q, want %q", item.Status, StatusNew)
	}
	if item.Hidden {
		t.Fatalf("new order should not be hidden")
	}
}

func TestCreateItemValidation(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	cases := []struct {
		name string
		body string
	}{
		{"zero quantity", `{"items":[{"product_id":"` + testProductID + `","quantity":0}],"name":"An","phone":"+84912345678"}`},
		{"empty items", `{"items":[],"name":"An","phone":"+84912345678"}`},
		{"missing items", `{"name":"An","phone":"+84912345678"}`},
		{"bad product id", `{"items":[{"product_id":"nope","quantity":1}],"name":"An","phone":"+84912345678"}`},
		{"bad phone", `{"items":[{"product_id":"` + testProductID + `","quantity":1}],"name":"An","phone":"abc"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(tc.body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestListSkipsHiddenByDefault(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo)

	visible := postOrder(t, router, CreateRequest{
		Items: []Item{{ProductID: testProductID, Quantity: 1}},
		Name:  "An",
		Phone: "+84912345678",
	})
	hidden := postOrder(t, router, CreateRequest{
		Items: []Item{{ProductID: testProductID, Quantity: 3}},
		Name:  "Binh",
		Phone: "+84987654321",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+hidden.ID, strings.NewReader(`{"hidden": true}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("hide order: got status %d (body %s)", rec.Code, rec.Body.String())
	}

	var listed struct {
		Items []OrderRequest `json:"items"`
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Items) != 1 || listed.Items[0].ID != visible.ID {
		t.Fatalf("default list should hold only the visible order, got %+v", listed.Items)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders?include_hidden=true", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Items) != 2 {
		t.Fatalf("include_hidden list should hold both orders, got %d", len(listed.Items))
	}
}

func TestUpdateStatus(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	item := postOrder(t, router, CreateRequest{
		Items: []Item{{ProductID: testProductID, Quantity: 1}},
		Name:  "An",
		Phone: "+84912345678",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+item.ID, strings.NewReader(`{"status":"completed"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: got status %d (body %s)", rec.Code, rec.Body.String())
	}

	var updated OrderRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("got status %q, want %q", updated.Status, StatusCompleted)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+item.ID, strings.NewReader(`{"status":"shipped"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: got %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestGetUnknownOrder(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/656f1db6a3c5d2b4e8f09999", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}
