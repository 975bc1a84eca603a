package orders

import "time"

const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Item struct {
	ProductID string `bson:"product_id" json:"product_id" validate:"required,objectid"`
	Quantity  int    `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

// OrderRequest is a customer's purchase enquiry, not a fulfilled order; staff
// move it through the declared statuses and can hide it from listings.
type OrderRequest struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Items     []Item    `bson:"items" json:"items"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	Status    string    `bson:"status" json:"status"`
	Hidden    bool      `bson:"hidden" json:"hidden"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Items []Item `json:"items" validate:"required,min=1,dive"`
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	Note  string `json:"note" validate:"omitempty,max=1000"`
}

type UpdateRequest struct {
	Items  []Item  `json:"items" validate:"omitempty,min=1,dive"`
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone  *string `json:"phone" validate:"omitempty,phone"`
	Email  *string `json:"email" validate:"omitempty,email,max=100"`
	Note   *string `json:"note" validate:"omitempty,max=1000"`
	Status *string `json:"status" validate:"omitempty,oneof=new in_progress completed cancelled"`
	Hidden *bool   `json:"hidden"`
}
