package stats

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
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

func (s *Service) Get(ctx context.Context) (Stats, error) {
	item, err := s.repo.GetOrCreate(ctx, time.Now().In(s.location))
	if err != nil {
		return Stats{}, apperror.Internal(err)
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (Stats, error) {
	set := bson.M{"updated_at": time.Now().In(s.location)}
	if req.Visits != nil {
		set["visits"] = *req.Visits
	}
	if req.TotalProfit != nil {
		set["total_profit"] = *req.TotalProfit
	}
	if req.TotalOrders != nil {
		set["total_orders"] = *req.TotalOrders
	}
	if req.TotalRepairs != nil {
		set["total_repairs"] = *req.TotalRepairs
	}
	if req.TotalProducts != nil {
		set["total_products"] = *req.TotalProducts
	}

	updated, err := s.repo.Update(ctx, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Stats{}, apperror.NotFound("stats not found")
		}
		return Stats{}, apperror.Internal(err)
	}
	return updated, nil
}

func (s *Service) RecordVisit(ctx context.Context) (Stats, error) {
	updated, err := s.repo.IncrementVisits(ctx, time.Now().In(s.location))
	if err != nil {
		return Stats{}, apperror.Internal(err)
	}
	return updated, nil
}
