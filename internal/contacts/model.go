package contacts

import "time"

// Contact holds the shop's own contact card; the API treats the most recent
// document as the one in effect.
type Contact struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	MapLink   string    `bson:"map_link" json:"map_link"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Phone   string `json:"phone" validate:"required,phone"`
	Address string `json:"address" validate:"omitempty,max=300"`
	MapLink string `json:"map_link" validate:"required,url"`
}

type UpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email" validate:"omitempty,email,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,phone"`
	Address *string `json:"address" validate:"omitempty,max=300"`
	MapLink *string `json:"map_link" validate:"omitempty,url"`
}
