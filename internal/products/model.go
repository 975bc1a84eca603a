package products

import (
	"time"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/uploads"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusHidden   = "hidden"
)

type Product struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64       `bson:"price" json:"price"`
	CategoryID  string        `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Image       uploads.Image `bson:"image,omitempty" json:"image,omitempty"`
	Status      string        `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  string  `json:"category_id" validate:"omitempty,objectid"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive hidden"`
}

type UpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,objectid"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive hidden"`
}
