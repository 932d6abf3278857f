package services

import (
	"context"
	"errors"
	"strings"

	"github.com/baharkarakas/blog-backend/internal/api/validate"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

// BlogNotifier is told about every successfully created post.
type BlogNotifier interface {
	BlogCreated(b models.Blog)
}

type CreateBlogInput struct {
	Title        string
	Content      string
	Author       string
	Category     string
	ExternalLink string
}

type BlogService struct {
	r        repo.Blogs
	notifier BlogNotifier
}

// NewBlogService accepts a nil notifier.
func NewBlogService(r repo.Blogs, n BlogNotifier) *BlogService {
	return &BlogService{r: r, notifier: n}
}

func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (models.Blog, error) {
	if err := validate.Collect(
		validate.Required("title", in.Title),
		validate.Required("content", in.Content),
		validate.Required("author", in.Author),
		validate.Required("category", in.Category),
	); err != nil {
		return models.Blog{}, invalid("Please fill all the required fields", err)
	}

	b, err := s.r.Create(ctx, models.Blog{
		Title:        in.Title,
		Content:      in.Content,
		Author:       in.Author,
		Category:     in.Category,
		ExternalLink: strings.TrimSpace(in.ExternalLink),
	})
	if err != nil {
		return models.Blog{}, err
	}
	metrics.BlogsCreated.Inc()
	if s.notifier != nil {
		s.notifier.BlogCreated(b)
	}
	return b, nil
}

// List returns every post; an empty store is not an error.
func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.r.List(ctx)
}

// ListByAuthor reports ErrNotFound when the author has no posts, unlike List.
func (s *BlogService) ListByAuthor(ctx context.Context, author string) ([]models.Blog, error) {
	if validate.Required("username", author) != nil {
		return nil, invalid("Username is required to fetch blogs", nil)
	}
	blogs, err := s.r.ListByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, newError(ErrNotFound, "No blogs found for this author.")
	}
	return blogs, nil
}

func (s *BlogService) UpdateContent(ctx context.Context, id, content string) (models.Blog, error) {
	if validate.Required("content", content) != nil {
		return models.Blog{}, invalid("Content is required", nil)
	}
	b, err := s.r.UpdateContent(ctx, id, content)
	return b, blogNotFound(err)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return blogNotFound(s.r.Delete(ctx, id))
}

func (s *BlogService) Like(ctx context.Context, id string) (models.Blog, error) {
	b, err := s.r.Like(ctx, id)
	if err == nil {
		metrics.BlogLikes.Inc()
	}
	return b, blogNotFound(err)
}

func blogNotFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return &Error{Kind: ErrNotFound, Message: "Blog not found", Cause: err}
	}
	return err
}
