package ratings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type fakeRepo struct {
	items []Rating
}

func (f *fakeRepo) Insert(ctx context.Context, item Rating) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepo) ListByProduct(ctx context.Context, productID string) ([]Rating, error) {
	out := make([]Rating, 0)
	for _, item := range f.items {
		if item.ProductID == productID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByService(ctx context.Context, serviceID string) ([]Rating, error) {
	out := make([]Rating, 0)
	for _, item := range f.items {
		if item.ServiceID == serviceID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

const (
	testProductID = "656f1db6a3c5d2b4e8f01234"
	testServiceID = "656f1db6a3c5d2b4e8f05678"
)

func TestCreateRequiresExactlyOneTarget(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC)

	cases := []struct {
		name      string
		productID string
		serviceID string
		wantErr   bool
	}{
		{"product only", testProductID, "", false},
		{"service only", "", testServiceID, false},
		{"both", testProductID, testServiceID, true},
		{"neither", "", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateRequest{
				ProductID: tc.productID,
				ServiceID: tc.serviceID,
				Name:      "An",
				Score:     4,
			})
			if tc.wantErr {
				if apperror.KindOf(err) != apperror.KindInvalid {
					t.Fatalf("expected invalid-input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestListByProductFilters(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC)

	if _, err := svc.Create(context.Background(), CreateRequest{ProductID: testProductID, Name: "An", Score: 5}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateRequest{ServiceID: testServiceID, Name: "Binh", Score: 3}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	items, err := svc.ListByProduct(context.Background(), testProductID)
	if err != nil {
		t.Fatalf("ListByProduct error: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != testProductID {
		t.Fatalf("unexpected items: %+v", items)
	}

	if _, err := svc.ListByProduct(context.Background(), "nope"); apperror.KindOf(err) != apperror.KindInvalid {
		t.Fatalf("expected invalid-input error for malformed product id, got %v", err)
	}
}

func TestDeleteUnknownRating(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC)

	if err := svc.Delete(context.Background(), testProductID); !apperror.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err := svc.Delete(context.Background(), "short"); apperror.KindOf(err) != apperror.KindInvalid {
		t.Fatalf("expected invalid-input error, got %v", err)
	}
}

func TestHandlerCreateScoreBounds(t *testing.T) {
	h := newTestHandler(&fakeRepo{})

	cases := []struct {
		score      int
		wantStatus int
	}{
		{0, http.StatusBadRequest},
		{1, http.StatusCreated},
		{5, http.StatusCreated},
		{6, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("score %d", tc.score), func(t *testing.T) {
			body, _ := json.Marshal(CreateRequest{
				ProductID: testProductID,
				Name:      "An",
				Score:     tc.score,
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ratings", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("score %d: got status %d, want %d (body %s)", tc.score, rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestHandlerDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC)
	item, err := svc.Create(context.Background(), CreateRequest{ProductID: testProductID, Name: "An", Score: 5})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	h := newTestHandler(repo)
	router := chi.NewRouter()
	router.Delete("/api/v1/ratings/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/ratings/"+item.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if len(repo.items) != 0 {
		t.Fatalf("rating not deleted")
	}
}

func newTestHandler(repo Repository) *Handler {
	svc := NewService(repo, time.UTC)
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return NewHandler(svc, validation.New(), log)
}
