package services

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusHidden   = "hidden"

	TypeHome  = "home"
	TypeStore = "store"
)

// Service is a repair/maintenance offering: performed at the customer's home
// or in the store.
type Service struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	Type          string    `bson:"type" json:"type"`
	EstimatedTime string    `bson:"estimated_time,omitempty" json:"estimated_time,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	Type          string  `json:"type" validate:"required,oneof=home store"`
	EstimatedTime string  `json:"estimated_time"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive hidden"`
}

type UpdateRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Type          *string  `json:"type" validate:"omitempty,oneof=home store"`
	EstimatedTime *string  `json:"estimated_time"`
	Status        *string  `json:"status" validate:"omitempty,oneof=active inactive hidden"`
}
