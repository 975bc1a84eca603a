package banners

import (
	"time"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/uploads"
)

// Position 1..4 places the banner on the storefront; 0 means unused.
type Banner struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Image       uploads.Image `bson:"image,omitempty" json:"image,omitempty"`
	Link        string        `bson:"link,omitempty" json:"link,omitempty"`
	Position    int           `bson:"position" json:"position"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Link        string `json:"link" validate:"omitempty,url"`
	Position    int    `json:"position" validate:"gte=0,lte=4"`
}

type UpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Position    *int    `json:"position" validate:"omitempty,gte=0,lte=4"`
}
