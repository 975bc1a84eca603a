package banners

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/uploads"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type fakeRepo struct {
	items map[string]Banner
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Banner)}
}

func (f *fakeRepo) Insert(ctx context.Context, item Banner) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (Banner, error) {
	item, ok := f.items[id]
	if !ok {
		return Banner{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]Banner, error) {
	items := make([]Banner, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, set bson.M) (Banner, error) {
	item, ok := f.items[id]
	if !ok {
		return Banner{}, mongo.ErrNoDocuments
	}
	if title, ok := set["title"].(string); ok {
		item.Title = title
	}
	if position, ok := set["position"].(int); ok {
		item.Position = position
	}
	if img, ok := set["image"].(uploads.Image); ok {
		item.Image = img
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

type fakeUploader struct {
	destroyed []string
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, file io.Reader) (uploads.Image, error) {
	return uploads.Image{
		URL:      "https://img.example.com/shop/" + filename,
		PublicID: "shop/" + filename,
	}, nil
}

func (f *fakeUploader) Destroy(ctx context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func TestDeleteDestroysImage(t *testing.T) {
	repo := newFakeRepo()
	uploader := &fakeUploader{}
	svc := NewService(repo, uploader, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{Title: "Summer Sale", Position: 1}, "sale.png", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(uploader.destroyed) != 1 || uploader.destroyed[0] != "shop/sale.png" {
		t.Fatalf("image not destroyed: %v", uploader.destroyed)
	}
	if _, err := svc.Get(context.Background(), item.ID); !apperror.IsNotFound(err) {
		t.Fatalf("banner should be gone, got %v", err)
	}
}

func TestDeleteWithoutImageSkipsDestroy(t *testing.T) {
	repo := newFakeRepo()
	uploader := &fakeUploader{}
	svc := NewService(repo, uploader, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{Title: "Plain"}, "", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(uploader.destroyed) != 0 {
		t.Fatalf("no image to destroy, got %v", uploader.destroyed)
	}
}

func TestPositionBounds(t *testing.T) {
	val := validation.New()

	for _, position := range []int{0, 4} {
		if err := val.Struct(CreateRequest{Title: "ok", Position: position}); err != nil {
			t.Fatalf("position %d should validate: %v", position, err)
		}
	}
	for _, position := range []int{-1, 5} {
		if err := val.Struct(CreateRequest{Title: "ok", Position: position}); err == nil {
			t.Fatalf("position %d should be rejected", position)
		}
	}
}

func TestCreateImageWithoutUploader(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, time.UTC)

	_, err := svc.Create(context.Background(), CreateRequest{Title: "Sale"}, "sale.png", strings.NewReader("bytes"))
	if apperror.KindOf(err) != apperror.KindInvalid {
		t.Fatalf("expected invalid-input error when uploads are disabled, got %v", err)
	}
}
