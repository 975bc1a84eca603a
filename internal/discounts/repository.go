package discounts

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Insert(ctx context.Context, item Discount) error
	FindByProduct(ctx context.Context, productID string) (Discount, error)
	List(ctx context.Context) ([]Discount, error)
	UpdateByProduct(ctx context.Context, productID string, set bson.M) (Discount, error)
	DeleteByProduct(ctx context.Context, productID string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, item Discount) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) FindByProduct(ctx context.Context, productID string) (Discount, error) {
	var item Discount
	if err := r.col.FindOne(ctx, bson.M{"product_id": productID}).Decode(&item); err != nil {
		return Discount{}, err
	}
	return item, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Discount, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Discount, 0)
	for cursor.Next(ctx) {
		var item Discount
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

func (r *MongoRepository) UpdateByProduct(ctx context.Context, productID string, set bson.M) (Discount, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Discount
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"product_id": productID}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return Discount{}, err
	}
	return updated, nil
}

func (r *MongoRepository) DeleteByProduct(ctx context.Context, productID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"product_id": productID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
