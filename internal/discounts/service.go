package discounts

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

func (s *Service) Create(ctx context.Context, req CreateRequest) (Discount, error) {
	now := time.Now().In(s.location)
	item := Discount{
		ID:        primitive.NewObjectID().Hex(),
		SaleOf:    req.SaleOf,
		ProductID: strings.TrimSpace(req.ProductID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Discount{}, apperror.Invalid("product already has a discount", nil)
		}
		return Discount{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) GetByProduct(ctx context.Context, productID string) (Discount, error) {
	productID = strings.TrimSpace(productID)
	if !validation.IsObjectID(productID) {
		return Discount{}, apperror.Invalid("invalid productId", nil)
	}

	item, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Discount{}, apperror.NotFound("discount not found")
		}
		return Discount{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Discount, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (s *Service) UpdateByProduct(ctx context.Context, productID string, req UpdateRequest) (Discount, error) {
	productID = strings.TrimSpace(productID)
	if !validation.IsObjectID(productID) {
		return Discount{}, apperror.Invalid("invalid productId", nil)
	}

	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.SaleOf != nil {
		set["sale_of"] = *req.SaleOf
	}

	updated, err := s.repo.UpdateByProduct(ctx, productID, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Discount{}, apperror.NotFound("discount not found")
		}
		return Discount{}, apperror.Internal(err)
	}
	return updated, nil
}

func (s *Service) DeleteByProduct(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if !validation.IsObjectID(productID) {
		return apperror.Invalid("invalid productId", nil)
	}

	deleted, err := s.repo.DeleteByProduct(ctx, productID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("discount not found")
	}
	return nil
}
