package ratings

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

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

func (s *Service) Create(ctx context.Context, req CreateRequest) (Rating, error) {
	productID := strings.TrimSpace(req.ProductID)
	serviceID := strings.TrimSpace(req.ServiceID)
	if (productID == "") == (serviceID == "") {
		return Rating{}, apperror.Invalid("exactly one of product_id or service_id is required", nil)
	}

	now := time.Now().In(s.location)
	item := Rating{
		ID:        primitive.NewObjectID().Hex(),
		ProductID: productID,
		ServiceID: serviceID,
		Name:      strings.TrimSpace(req.Name),
		Score:     req.Score,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return Rating{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]Rating, error) {
	productID = strings.TrimSpace(productID)
	if !validation.IsObjectID(productID) {
		return nil, apperror.Invalid("invalid productId", nil)
	}

	items, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) ListByService(ctx context.Context, serviceID string) ([]Rating, error) {
	serviceID = strings.TrimSpace(serviceID)
	if !validation.IsObjectID(serviceID) {
		return nil, apperror.Invalid("invalid id", nil)
	}

	items, err := s.repo.ListByService(ctx, serviceID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
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
		return apperror.NotFound("rating not found")
	}
	return nil
}
