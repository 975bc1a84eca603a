package services

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

// Manager is the use-case layer for services; the Service name is taken by
// the entity itself.
type Manager struct {
	repo     Repository
	location *time.Location
}

func NewManager(repo Repository, location *time.Location) *Manager {
	return &Manager{
		repo:     repo,
		location: location,
	}
}

func (m *Manager) Create(ctx context.Context, req CreateRequest) (Service, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusActive
	}

	now := time.Now().In(m.location)
	item := Service{
		ID:            primitive.NewObjectID().Hex(),
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		Type:          strings.TrimSpace(req.Type),
		EstimatedTime: strings.TrimSpace(req.EstimatedTime),
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := m.repo.Insert(ctx, item); err != nil {
		return Service{}, apperror.Internal(err)
	}
	return item, nil
}

func (m *Manager) Get(ctx context.Context, id string) (Service, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Service{}, apperror.Invalid("invalid id", nil)
	}

	item, err := m.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, apperror.NotFound("service not found")
		}
		return Service{}, apperror.Internal(err)
	}
	return item, nil
}

func (m *Manager) List(ctx context.Context) ([]Service, error) {
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (m *Manager) Search(ctx context.Context, query string) ([]Service, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.Invalid("missing search query", nil)
	}

	items, err := m.repo.Search(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (m *Manager) Update(ctx context.Context, id string, req UpdateRequest) (Service, error) {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return Service{}, apperror.Invalid("invalid id", nil)
	}

	set := bson.M{"updated_at": time.Now().In(m.location)}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Type != nil {
		set["type"] = strings.TrimSpace(*req.Type)
	}
	if req.EstimatedTime != nil {
		set["estimated_time"] = strings.TrimSpace(*req.EstimatedTime)
	}
	if req.Status != nil {
		set["status"] = strings.TrimSpace(*req.Status)
	}

	updated, err := m.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Service{}, apperror.NotFound("service not found")
		}
		return Service{}, apperror.Internal(err)
	}
	return updated, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if !validation.IsObjectID(id) {
		return apperror.Invalid("invalid id", nil)
	}

	deleted, err := m.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("service not found")
	}
	return nil
}
