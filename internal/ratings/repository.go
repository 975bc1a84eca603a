package ratings

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Insert(ctx context.Context, item Rating) error
	ListByProduct(ctx context.Context, productID string) ([]Rating, error)
	ListByService(ctx context.Context, serviceID string) ([]Rating, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, item Rating) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) ListByProduct(ctx context.Context, productID string) ([]Rating, error) {
	return r.find(ctx, bson.M{"product_id": productID})
}

func (r *MongoRepository) ListByService(ctx context.Context, serviceID string) ([]Rating, error) {
	return r.find(ctx, bson.M{"service_id": serviceID})
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Rating, 0)
	for cursor.Next(ctx) {
		var item Rating
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
