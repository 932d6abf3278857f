package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

type blogDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Content      string             `bson:"content"`
	Author       string             `bson:"author"`
	Category     string             `bson:"category"`
	ExternalLink string             `bson:"externalLink,omitempty"`
	Likes        int64              `bson:"likes"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d blogDoc) model() models.Blog {
	return models.Blog{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Content:      d.Content,
		Author:       d.Author,
		Category:     d.Category,
		ExternalLink: d.ExternalLink,
		Likes:        d.Likes,
		CreatedAt:    d.CreatedAt,
	}
}

type blogsRepo struct{ coll *mongo.Collection }

func (r *blogsRepo) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	doc := blogDoc{
		ID:           primitive.NewObjectID(),
		Title:        b.Title,
		Content:      b.Content,
		Author:       b.Author,
		Category:     b.Category,
		ExternalLink: b.ExternalLink,
		// BSON dates carry millisecond precision
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return models.Blog{}, fmt.Errorf("insert blog: %w", err)
	}
	return doc.model(), nil
}

func (r *blogsRepo) List(ctx context.Context) ([]models.Blog, error) {
	return r.find(ctx, bson.M{})
}

func (r *blogsRepo) ListByAuthor(ctx context.Context, author string) ([]models.Blog, error) {
	return r.find(ctx, bson.M{"author": author})
}

func (r *blogsRepo) find(ctx context.Context, filter bson.M) ([]models.Blog, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []blogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Blog, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *blogsRepo) UpdateContent(ctx context.Context, id, content string) (models.Blog, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"content": content}})
}

func (r *blogsRepo) Like(ctx context.Context, id string) (models.Blog, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$inc": bson.M{"likes": 1}})
}

func (r *blogsRepo) findAndUpdate(ctx context.Context, id string, update bson.M) (models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Blog{}, repository.ErrNotFound
	}
	var doc blogDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Blog{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}
	return doc.model(), nil
}

func (r *blogsRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
