package ratings

import "time"

// A rating targets a product or a service, never both.
type Rating struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ProductID string    `bson:"product_id,omitempty" json:"product_id,omitempty"`
	ServiceID string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Name      string    `bson:"name" json:"name"`
	Score     int       `bson:"score" json:"score"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	ProductID string `json:"product_id" validate:"omitempty,objectid"`
	ServiceID string `json:"service_id" validate:"omitempty,objectid"`
	Name      string `json:"name" validate:"required,max=100"`
	Score     int    `json:"score" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,max=1000"`
}
