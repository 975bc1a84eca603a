package categories

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type Service struct {
	repo     Repository
	products ProductDetacher
	location *time.Location
}

func NewService(repo Repository, products ProductDetacher, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		products: products,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Category, error) {
	now := time.Now().In(s.location)
	item := Category{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return Category{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Category{}, apperror.Invalid("invalid id", nil)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Category{}, apperror.NotFound("category not found")
		}
		return Category{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Category, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Category{}, apperror.Invalid("invalid id", nil)
	}

	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Category{}, apperror.NotFound("category not found")
		}
		return Category{}, apperror.Internal(err)
	}
	return updated, nil
}

// Delete removes a category and clears category_id on every product that
// referenced it. The two steps are not atomic; detaching runs first so that a
// failure between them leaves products already detached rather than pointing
// at a missing category.
func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return 0, apperror.Invalid("invalid id", nil)
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, apperror.NotFound("category not found")
		}
		return 0, apperror.Internal(err)
	}

	detached, err := s.products.DetachCategory(ctx, id)
	if err != nil {
		return 0, apperror.Internal(err)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return detached, apperror.Internal(err)
	}
	if !deleted {
		return detached, apperror.NotFound("category not found")
	}
	return detached, nil
}
