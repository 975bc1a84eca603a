package banners

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

func NewService(repo Repository, uploader uploads.Uploader, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest, imageName string, image io.Reader) (Banner, error) {
	img, err := s.uploadImage(ctx, imageName, image)
	if err != nil {
		return Banner{}, err
	}

	now := time.Now().In(s.location)
	item := Banner{
		ID:          primitive.NewObjectID().Hex(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Image:       img,
		Link:        strings.TrimSpace(req.Link),
		Position:    req.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return Banner{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Banner, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Banner{}, apperror.Invalid("invalid id", nil)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Banner{}, apperror.NotFound("banner not found")
		}
		return Banner{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Banner, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest, imageName string, image io.Reader) (Banner, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Banner{}, apperror.Invalid("invalid id", nil)
	}

	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Link != nil {
		set["link"] = strings.TrimSpace(*req.Link)
	}
	if req.Position != nil {
		set["position"] = *req.Position
	}

	if image != nil {
		img, err := s.uploadImage(ctx, imageName, image)
		if err != nil {
			return Banner{}, err
		}
		set["image"] = img
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Banner{}, apperror.NotFound("banner not found")
		}
		return Banner{}, apperror.Internal(err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return apperror.Invalid("invalid id", nil)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperror.NotFound("banner not found")
		}
		return apperror.Internal(err)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("banner not found")
	}

	// Best effort: the banner is gone either way, a leaked file on the image
	// host is acceptable.
	if s.uploader != nil && item.Image.PublicID != "" {
		_ = s.uploader.Destroy(ctx, item.Image.PublicID)
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
