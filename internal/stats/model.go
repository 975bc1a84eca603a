package stats

import "time"

// statsID is the fixed identifier of the single counters document.
const statsID = "global"

type Stats struct {
	ID            string    `bson:"_id" json:"id"`
	Visits        int64     `bson:"visits" json:"visits"`
	TotalProfit   float64   `bson:"total_profit" json:"total_profit"`
	TotalOrders   int64     `bson:"total_orders" json:"total_orders"`
	TotalRepairs  int64     `bson:"total_repairs" json:"total_repairs"`
	TotalProducts int64     `bson:"total_products" json:"total_products"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

type UpdateRequest struct {
	Visits        *int64   `json:"visits" validate:"omitempty,gte=0"`
	TotalProfit   *float64 `json:"total_profit" validate:"omitempty,gte=0"`
	TotalOrders   *int64   `json:"total_orders" validate:"omitempty,gte=0"`
	TotalRepairs  *int64   `json:"total_repairs" validate:"omitempty,gte=0"`
	TotalProducts *int64   `json:"total_products" validate:"omitempty,gte=0"`
}
