package discounts

import "time"

// A product has at most one discount; product_id is the effective identity
// for every discount operation.
type Discount struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	SaleOf    float64   `bson:"sale_of" json:"sale_of"`
	ProductID string    `bson:"product_id" json:"product_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	SaleOf    float64 `json:"sale_of" validate:"gte=0"`
	ProductID string  `json:"product_id" validate:"required,objectid"`
}

type UpdateRequest struct {
	SaleOf *float64 `json:"sale_of" validate:"omitempty,gte=0"`
}
