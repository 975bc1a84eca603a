package contacts

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

func (s *Service) Create(ctx context.Context, req CreateRequest) (Contact, error) {
	now := time.Now().In(s.location)
	item := Contact{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		MapLink:   strings.TrimSpace(req.MapLink),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return Contact{}, apperror.Internal(err)
	}
	return item, nil
}

// Get returns the contact card in effect; not-found when none has been
// created yet.
func (s *Service) Get(ctx context.Context) (Contact, error) {
	item, err := s.repo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Contact{}, apperror.NotFound("contact not found")
		}
		return Contact{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Contact, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Contact{}, apperror.Invalid("invalid id", nil)
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
	if req.Address != nil {
		set["address"] = strings.TrimSpace(*req.Address)
	}
	if req.MapLink != nil {
		set["map_link"] = strings.TrimSpace(*req.MapLink)
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Contact{}, apperror.NotFound("contact not found")
		}
		return Contact{}, apperror.Internal(err)
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
		return apperror.NotFound("contact not found")
	}
	return nil
}
