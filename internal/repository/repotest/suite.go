// Package repotest holds the behaviour every repository backend must share.
package repotest

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

// Run exercises repos against a store that may already hold data; names are
// randomised so the suite can share a database with other runs.
func Run(t *testing.T, repos repository.Repositories) {
	t.Run("UsersUnique", func(t *testing.T) { usersUnique(t, repos.Users) })
	t.Run("UsersConcurrentCreate", func(t *testing.T) { usersConcurrentCreate(t, repos.Users) })
	t.Run("BlogsLifecycle", func(t *testing.T) { blogsLifecycle(t, repos.Blogs) })
	t.Run("BlogsUnknownIDs", func(t *testing.T) { blogsUnknownIDs(t, repos.Blogs) })
	t.Run("Subscribers", func(t *testing.T) { subscribers(t, repos.Subscribers) })
}

func unique(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func usersUnique(t *testing.T, users repository.Users) {
	ctx := context.Background()
	name := unique("user")

	require.NoError(t, users.Create(ctx, models.User{Username: name, PasswordHash: "hash"}))
	assert.ErrorIs(t, users.Create(ctx, models.User{Username: name, PasswordHash: "other"}), repository.ErrDuplicate)

	u, err := users.GetByUsername(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, name, u.Username)
	assert.Equal(t, "hash", u.PasswordHash)

	_, err = users.GetByUsername(ctx, unique("missing"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func usersConcurrentCreate(t *testing.T, users repository.Users) {
	ctx := context.Background()
	name := unique("race")

	var ok atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := users.Create(ctx, models.User{Username: name, PasswordHash: "h"}); err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, ok.Load())
}

func blogsLifecycle(t *testing.T, blogs repository.Blogs) {
	ctx := context.Background()
	author := unique("author")

	created, err := blogs.Create(ctx, models.Blog{
		Title: "T", Content: "C", Author: author, Category: "tech", ExternalLink: "https://example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.Likes)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "https://example.com", created.ExternalLink)

	mine, err := blogs.ListByAuthor(ctx, author)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	all, err := blogs.List(ctx)
	require.NoError(t, err)
	assert.True(t, containsID(all, created.ID))

	for i := 0; i < 3; i++ {
		_, err = blogs.Like(ctx, created.ID)
		require.NoError(t, err)
	}
	updated, err := blogs.UpdateContent(ctx, created.ID, "C2")
	require.NoError(t, err)
	assert.Equal(t, "C2", updated.Content)
	assert.EqualValues(t, 3, updated.Likes)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	require.NoError(t, blogs.Delete(ctx, created.ID))
	assert.ErrorIs(t, blogs.Delete(ctx, created.ID), repository.ErrNotFound)

	none, err := blogs.ListByAuthor(ctx, author)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func blogsUnknownIDs(t *testing.T, blogs repository.Blogs) {
	ctx := context.Background()
	for _, id := range []string{"not-an-id", uuid.NewString(), "64b7f0c2a1b2c3d4e5f60718"} {
		_, err := blogs.Like(ctx, id)
		assert.ErrorIs(t, err, repository.ErrNotFound, id)
		_, err = blogs.UpdateContent(ctx, id, "x")
		assert.ErrorIs(t, err, repository.ErrNotFound, id)
		assert.ErrorIs(t, blogs.Delete(ctx, id), repository.ErrNotFound, id)
	}
}

func subscribers(t *testing.T, subs repository.Subscribers) {
	ctx := context.Background()
	email := unique("reader") + "@example.com"

	require.NoError(t, subs.Create(ctx, models.Subscriber{Email: email}))
	assert.ErrorIs(t, subs.Create(ctx, models.Subscriber{Email: email}), repository.ErrDuplicate)

	list, err := subs.List(ctx)
	require.NoError(t, err)
	found := false
	for _, s := range list {
		if s.Email == email {
			found = true
		}
	}
	assert.True(t, found)
}

func containsID(blogs []models.Blog, id string) bool {
	for _, b := range blogs {
		if b.ID == id {
			return true
		}
	}
	return false
}
