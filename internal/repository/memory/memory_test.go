package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/baharkarakas/blog-backend/internal/repository/repotest"
)

func TestBlogsLifecycle(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()

	first, err := repos.Blogs.Create(ctx, models.Blog{Title: "A", Content: "c", Author: "alice", Category: "tech", Likes: 7})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Zero(t, first.Likes)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repos.Blogs.Create(ctx, models.Blog{Title: "B", Content: "c", Author: "bob", Category: "life"})
	require.NoError(t, err)

	all, err := repos.Blogs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	mine, err := repos.Blogs.ListByAuthor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	updated, err := repos.Blogs.UpdateContent(ctx, first.ID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)

	liked, err := repos.Blogs.Like(ctx, first.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, liked.Likes)

	require.NoError(t, repos.Blogs.Delete(ctx, first.ID))
	assert.ErrorIs(t, repos.Blogs.Delete(ctx, first.ID), repository.ErrNotFound)
	_, err = repos.Blogs.Like(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubscribersKeepOrder(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()

	require.NoError(t, repos.Subscribers.Create(ctx, models.Subscriber{Email: "a@example.com"}))
	require.NoError(t, repos.Subscribers.Create(ctx, models.Subscriber{Email: "b@example.com"}))
	assert.ErrorIs(t, repos.Subscribers.Create(ctx, models.Subscriber{Email: "a@example.com"}), repository.ErrDuplicate)

	subs, err := repos.Subscribers.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "a@example.com", subs[0].Email)
	assert.Equal(t, "b@example.com", subs[1].Email)
}

func TestConformance(t *testing.T) {
	repotest.Run(t, NewRepositories())
}
