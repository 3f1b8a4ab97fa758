package reference

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 10 * time.Second

// Repository reads the static reference collections: product categories and
// phone country codes. Both are small enough for full-collection reads.
type Repository struct {
	categories   *mongo.Collection
	countryCodes *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		categories:   db.Collection("categoryList"),
		countryCodes: db.Collection("countryList"),
	}
}

func (r *Repository) AllCategories(ctx context.Context) ([]bson.M, error) {
	return r.findAll(ctx, r.categories)
}

func (r *Repository) AllCountryCodes(ctx context.Context) ([]bson.M, error) {
	return r.findAll(ctx, r.countryCodes)
}

func (r *Repository) findAll(ctx context.Context, collection *mongo.Collection) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
