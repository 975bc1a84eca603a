package servicecategories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Insert(ctx context.Context, item ServiceCategory) error
	FindByID(ctx context.Context, id string) (ServiceCategory, error)
	FindBySlug(ctx context.Context, slug string) (ServiceCategory, error)
	List(ctx context.Context) ([]ServiceCategory, error)
	Update(ctx context.Context, id string, set bson.M) (ServiceCategory, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, item ServiceCategory) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (ServiceCategory, error) {
	var item ServiceCategory
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return ServiceCategory{}, err
	}
	return item, nil
}

func (r *MongoRepository) FindBySlug(ctx context.Context, slug string) (ServiceCategory, error) {
	var item ServiceCategory
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&item); err != nil {
		return ServiceCategory{}, err
	}
	return item, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]ServiceCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]ServiceCategory, 0)
	for cursor.Next(ctx) {
		var item ServiceCategory
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

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (ServiceCategory, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated ServiceCategory
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return ServiceCategory{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
