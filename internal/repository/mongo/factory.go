// Package mongo stores users, blogs and subscribers as documents, one
// collection each, in the database named by MONGO_DB.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

const (
	usersCollection       = "users"
	blogsCollection       = "blogs"
	subscribersCollection = "subscribers"
)

func NewRepositories(db *mongo.Database) repo.Repositories {
	return repo.Repositories{
		Users:       &usersRepo{coll: db.Collection(usersCollection)},
		Blogs:       &blogsRepo{coll: db.Collection(blogsCollection)},
		Subscribers: &subscribersRepo{coll: db.Collection(subscribersCollection)},
	}
}

// EnsureIndexes creates the unique indexes that make Create fail with
// ErrDuplicate instead of relying on a read before the insert.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := []struct {
		coll  string
		field string
	}{
		{usersCollection, "username"},
		{subscribersCollection, "email"},
	}
	for _, u := range unique {
		_, err := db.Collection(u.coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: u.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("index %s.%s: %w", u.coll, u.field, err)
		}
	}
	_, err := db.Collection(blogsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author", Value: 1}},
	})
	return err
}
