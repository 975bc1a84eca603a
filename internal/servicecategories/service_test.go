package servicecategories

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
)

type fakeRepo struct {
	items map[string]ServiceCategory
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]ServiceCategory)}
}

func (f *fakeRepo) Insert(ctx context.Context, item ServiceCategory) error {
	for _, existing := range f.items {
		if existing.Slug == item.Slug {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (ServiceCategory, error) {
	item, ok := f.items[id]
	if !ok {
		return ServiceCategory{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) FindBySlug(ctx context.Context, slug string) (ServiceCategory, error) {
	for _, item := range f.items {
		if item.Slug == slug {
			return item, nil
		}
	}
	return ServiceCategory{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) List(ctx context.Context) ([]ServiceCategory, error) {
	items := make([]ServiceCategory, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (ServiceCategory, error) {
	item, ok := f.items[id]
	if !ok {
		return ServiceCategory{}, mongo.ErrNoDocuments
	}
	if name, ok := set["name"].(string); ok {
		item.Name = name
	}
	if slug, ok := set["slug"].(string); ok {
		item.Slug = slug
	}
	if status, ok := set["status"].(string); ok {
		item.Status = status
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

func TestCreateDerivesSlugFromName(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{Name: "Upgrades & Repairs"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.Slug != "upgrades-and-repairs" {
		t.Fatalf("got slug %q", item.Slug)
	}
	if item.Status != StatusActive {
		t.Fatalf("got status %q, want %q", item.Status, StatusActive)
	}
}

func TestCreatePrefersExplicitSlug(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{Name: "Laptop Repair", Slug: "Home Repairs"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.Slug != "home-repairs" {
		t.Fatalf("got slug %q", item.Slug)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	if _, err := svc.Create(context.Background(), CreateRequest{Name: "Laptop Repair"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	_, err := svc.Create(context.Background(), CreateRequest{Name: "laptop repair"})
	if apperror.KindOf(err) != apperror.KindInvalid {
		t.Fatalf("expected invalid-input error for duplicate slug, got %v", err)
	}
}

func TestGetBySlug(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	created, err := svc.Create(context.Background(), CreateRequest{Name: "Laptop Repair"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	found, err := svc.GetBySlug(context.Background(), "laptop-repair")
	if err != nil {
		t.Fatalf("GetBySlug error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("got %+v, want id %s", found, created.ID)
	}

	if _, err := svc.GetBySlug(context.Background(), "missing"); !apperror.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), "  "); apperror.KindOf(err) != apperror.KindInvalid {
		t.Fatalf("expected invalid-input error for blank slug, got %v", err)
	}
}

func TestUpdateSlugNormalized(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{Name: "Laptop Repair"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	slug := "PC Builds"
	updated, err := svc.Update(context.Background(), item.ID, UpdateRequest{Slug: &slug})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Slug != "pc-builds" {
		t.Fatalf("got slug %q", updated.Slug)
	}

	bad := "???"
	if _, err := svc.Update(context.Background(), item.ID, UpdateRequest{Slug: &bad}); apperror.KindOf(err) != apperror.KindInvalid {
		t.Fatalf("expected invalid-input error for unusable slug, got %v", err)
	}
}
