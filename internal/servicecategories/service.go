package servicecategories

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/utils"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (ServiceCategory, error) {
	slug := normalizeSlug(req.Slug, req.Name)
	if slug == "" {
		return ServiceCategory{}, apperror.Invalid("invalid slug", nil)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusActive
	}

	now := time.Now().In(s.location)
	item := ServiceCategory{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ServiceCategory{}, apperror.Invalid("slug already exists", nil)
		}
		return ServiceCategory{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (ServiceCategory, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return ServiceCategory{}, apperror.Invalid("invalid id", nil)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ServiceCategory{}, apperror.NotFound("service category not found")
		}
		return ServiceCategory{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (ServiceCategory, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ServiceCategory{}, apperror.Invalid("missing slug", nil)
	}

	item, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ServiceCategory{}, apperror.NotFound("service category not found")
		}
		return ServiceCategory{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]ServiceCategory, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (ServiceCategory, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return ServiceCategory{}, apperror.Invalid("invalid id", nil)
	}

	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		slug := utils.Slugify(*req.Slug)
		if slug == "" {
			return ServiceCategory{}, apperror.Invalid("invalid slug", nil)
		}
		set["slug"] = slug
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		set["status"] = strings.TrimSpace(*req.Status)
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ServiceCategory{}, apperror.NotFound("service category not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return ServiceCategory{}, apperror.Invalid("slug already exists", nil)
		}
		return ServiceCategory{}, apperror.Internal(err)
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
		return apperror.NotFound("service category not found")
	}
	return nil
}

func normalizeSlug(slug, name string) string {
	if s := utils.Slugify(slug); s != "" {
		return s
	}
	return utils.Slugify(name)
}
