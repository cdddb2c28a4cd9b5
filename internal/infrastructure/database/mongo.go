package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	PostsCollection    = "posts"
	SiteInfoCollection = "siteinfo"
	CarouselCollection = "carousels"
)

// Connect opens a pooled client and returns the named database. The client
// is established once per process and reused across requests, which matches
// the per-container lifetime of a serverless deployment.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes the data model relies on:
// users.email, users.phone, products.urlString, posts.urlString.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	slugIndex := mongo.IndexModel{Keys: bson.D{{Key: "urlString", Value: 1}}, Options: unique}
	if _, err := db.Collection(ProductsCollection).Indexes().CreateOne(ctx, slugIndex); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	if _, err := db.Collection(PostsCollection).Indexes().CreateOne(ctx, slugIndex); err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}

	orderIndex := mongo.IndexModel{Keys: bson.D{{Key: "order", Value: 1}}}
	if _, err := db.Collection(CarouselCollection).Indexes().CreateOne(ctx, orderIndex); err != nil {
		return fmt.Errorf("failed to create carousel indexes: %w", err)
	}

	return nil
}
