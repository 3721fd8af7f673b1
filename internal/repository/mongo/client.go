// Package mongo stores content items as one document per item, with the
// like set and comment tree embedded. Engagement mutations are single
// field-targeted update commands, so concurrent writers never overwrite
// each other's changes.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Guyuepp/portfolio-cms/domain"
)

// Connect opens a client and pings the primary
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// CollectionName returns the collection holding items of kind
func CollectionName(kind domain.Kind) string {
	switch kind {
	case domain.KindBlog:
		return "blogs"
	case domain.KindVideo:
		return "videos"
	}
	return ""
}

func collection(db *mongo.Database, kind domain.Kind) (*mongo.Collection, error) {
	name := CollectionName(kind)
	if name == "" {
		return nil, domain.InvalidField("kind")
	}
	return db.Collection(name), nil
}

// EnsureIndexes creates the indexes the repositories query by
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "comments._id", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	for _, kind := range []domain.Kind{domain.KindBlog, domain.KindVideo} {
		if _, err := db.Collection(CollectionName(kind)).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", CollectionName(kind), err)
		}
	}
	return nil
}
