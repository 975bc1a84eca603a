package products

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/uploads"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type Service struct {
	repo     Repository
	uploader uploads.Uploader
	location *time.Location
}

// NewService accepts a nil uploader; image-bearing requests then fail with an
// invalid-input error instead of reaching the image host.
func NewService(repo Repository, uploader uploads.Uploader, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest, imageName string, image io.Reader) (Product, error) {
	img, err := s.uploadImage(ctx, imageName, image)
	if err != nil {
		return Product{}, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusActive
	}

	now := time.Now().In(s.location)
	item := Product{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		CategoryID:  strings.TrimSpace(req.CategoryID),
		Image:       img,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return Product{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Product{}, apperror.Invalid("invalid id", nil)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Product{}, apperror.NotFound("product not found")
		}
		return Product{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.Invalid("missing search query", nil)
	}

	items, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest, imageName string, image io.Reader) (Product, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Product{}, apperror.Invalid("invalid id", nil)
	}

	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.CategoryID != nil {
		set["category_id"] = strings.TrimSpace(*req.CategoryID)
	}
	if req.Status != nil {
		set["status"] = strings.TrimSpace(*req.Status)
	}

	if image != nil {
		img, err := s.uploadImage(ctx, imageName, image)
		if err != nil {
			return Product{}, err
		}
		set["image"] = img
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Product{}, apperror.NotFound("product not found")
		}
		return Product{}, apperror.Internal(err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return apperror.Invalid("invalid id", nil)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("product not found")
	}
	return nil
}

func (s *Service) uploadImage(ctx context.Context, imageName string, image io.Reader) (uploads.Image, error) {
	if image == nil {
		return uploads.Image{}, nil
	}
	if s.uploader == nil {
		return uploads.Image{}, apperror.Invalid("image uploads not configured", nil)
	}
	img, err := s.uploader.Upload(ctx, imageName, image)
	if err != nil {
		return uploads.Image{}, apperror.Internal(err)
	}
	return img, nil
}
