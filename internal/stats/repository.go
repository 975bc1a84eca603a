package stats

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	GetOrCreate(ctx context.Context, now time.Time) (Stats, error)
	Update(ctx context.Context, set bson.M) (Stats, error)
	IncrementVisits(ctx context.Context, now time.Time) (Stats, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

// GetOrCreate upserts the global counters document on first access so reads
// never come back empty.
func (r *MongoRepository) GetOrCreate(ctx context.Context, now time.Time) (Stats, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{
		"$setOnInsert": bson.M{
			"visits":         int64(0),
			"total_profit":   float64(0),
			"total_orders":   int64(0),
			"total_repairs":  int64(0),
			"total_products": int64(0),
			"created_at":     now,
			"updated_at":     now,
		},
	}

	var item Stats
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": statsID}, update, opts).Decode(&item); err != nil {
		return Stats{}, err
	}
	return item, nil
}

func (r *MongoRepository) Update(ctx context.Context, set bson.M) (Stats, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Stats
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": statsID}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return Stats{}, err
	}
	return updated, nil
}

func (r *MongoRepository) IncrementVisits(ctx context.Context, now time.Time) (Stats, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{
		"$inc": bson.M{"visits": int64(1)},
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"total_profit":   float64(0),
			"total_orders":   int64(0),
			"total_repairs":  int64(0),
			"total_products": int64(0),
			"created_at":     now,
		},
	}

	var updated Stats
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": statsID}, update, opts).Decode(&updated); err != nil {
		return Stats{}, err
	}
	return updated, nil
}
