package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	UsersCollection        = "users"
	IngredientsCollection  = "ingredients"
	KitchenToolsCollection = "kitchen_tools"
	CategoriesCollection   = "categories"
	RecipesCollection      = "recipes"
)

// Collections groups the handles of every collection the API uses.
type Collections struct {
	Users        *mongo.Collection
	Ingredients  *mongo.Collection
	KitchenTools *mongo.Collection
	Categories   *mongo.Collection
	Recipes      *mongo.Collection
}

// Connect dials MongoDB and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// Open returns the collections of database name.
func Open(client *mongo.Client, name string) *Collections {
	database := client.Database(name)
	return &Collections{
		Users:        database.Collection(UsersCollection),
		Ingredients:  database.Collection(IngredientsCollection),
		KitchenTools: database.Collection(KitchenToolsCollection),
		Categories:   database.Collection(CategoriesCollection),
		Recipes:      database.Collection(RecipesCollection),
	}
}

// UniqueIndexes lists the key field enforced unique on each collection.
func (c *Collections) UniqueIndexes() map[*mongo.Collection]string {
	return map[*mongo.Collection]string{
		c.Users:        "email",
		c.Ingredients:  "name",
		c.KitchenTools: "name",
		c.Categories:   "name",
		c.Recipes:      "title",
	}
}

// EnsureIndexes creates the unique indexes duplicate-key detection relies on.
// Creating an index that already exists is a no-op.
func EnsureIndexes(ctx context.Context, c *Collections) error {
	for coll, field := range c.UniqueIndexes() {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(field + "_unique"),
		}
		name, err := coll.Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("create index on %s.%s: %w", coll.Name(), field, err)
		}
		slog.Debug("index ready", "collection", coll.Name(), "index", name)
	}
	return nil
}
