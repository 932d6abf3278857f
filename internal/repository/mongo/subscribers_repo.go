package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

type subscriberDoc struct {
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"createdAt"`
}

type subscribersRepo struct{ coll *mongo.Collection }

func (r *subscribersRepo) Create(ctx context.Context, s models.Subscriber) error {
	_, err := r.coll.InsertOne(ctx, subscriberDoc{Email: s.Email, CreatedAt: time.Now().UTC()})
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}

func (r *subscribersRepo) List(ctx context.Context) ([]models.Subscriber, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []subscriberDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Subscriber, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Subscriber{Email: d.Email, CreatedAt: d.CreatedAt})
	}
	return out, nil
}
