package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/blog-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Users interface {
	// Create fails with ErrDuplicate when the username is taken.
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

type Blogs interface {
	Create(ctx context.Context, b models.Blog) (models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	ListByAuthor(ctx context.Context, author string) ([]models.Blog, error)
	UpdateContent(ctx context.Context, id, content string) (models.Blog, error)
	Delete(ctx context.Context, id string) error
	// Like increments the like counter by one in a single store operation.
	Like(ctx context.Context, id string) (models.Blog, error)
}

type Subscribers interface {
	Create(ctx context.Context, s models.Subscriber) error
	List(ctx context.Context) ([]models.Subscriber, error)
}

// Repositories bundles one backend's stores.
type Repositories struct {
	Users       Users
	Blogs       Blogs
	Subscribers Subscribers
}
