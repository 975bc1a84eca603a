package orders

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

func (s *Service) Create(ctx context.Context, req CreateRequest) (OrderRequest, error) {
	now := time.Now().In(s.location)
	item := OrderRequest{
		ID:        primitive.NewObjectID().Hex(),
		Items:     req.Items,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Note:      strings.TrimSpace(req.Note),
		Status:    StatusNew,
		Hidden:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return OrderRequest{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (OrderRequest, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return OrderRequest{}, apperror.Invalid("invalid id", nil)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return OrderRequest{}, apperror.NotFound("order request not found")
		}
		return OrderRequest{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, includeHidden bool) ([]OrderRequest, error) {
	items, err := s.repo.List(ctx, includeHidden)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

// Update applies a partial merge; status may move between any two declared
// values, there is no transition graph.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (OrderRequest, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return OrderRequest{}, apperror.Invalid("invalid id", nil)
	}

	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.Items != nil {
		set["items"] = req.Items
	}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		set["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		set["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Note != nil {
		set["note"] = strings.TrimSpace(*req.Note)
	}
	if req.Status != nil {
		set["status"] = strings.TrimSpace(*req.Status)
	}
	if req.Hidden != nil {
		set["hidden"] = *req.Hidden
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return OrderRequest{}, apperror.NotFound("order request not found")
		}
		return OrderRequest{}, apperror.Internal(err)
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
		return apperror.NotFound("order request not found")
	}
	return nil
}
