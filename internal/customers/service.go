package customers

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
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Customer, error) {
	now := time.Now().In(s.location)
	item := Customer{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Customer{}, apperror.Invalid("customer name or email already exists", nil)
		}
		return Customer{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Customer{}, apperror.Invalid("invalid id", nil)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Customer{}, apperror.NotFound("customer not found")
		}
		return Customer{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Customer, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Customer{}, apperror.Invalid("invalid id", nil)
	}

	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		set["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		set["phone"] = strings.TrimSpace(*req.Phone)
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Customer{}, apperror.NotFound("customer not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return Customer{}, apperror.Invalid("customer name or email already exists", nil)
		}
		return Customer{}, apperror.Internal(err)
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
		return apperror.NotFound("customer not found")
	}
	return nil
}
