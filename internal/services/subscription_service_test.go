package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/blog-backend/internal/mail"
	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository/memory"
	"github.com/baharkarakas/blog-backend/internal/worker"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func TestSubscribeSendsWelcome(t *testing.T) {
	sender := &fakeSender{}
	wp := worker.NewPool(2)
	s := NewSubscriptionService(memory.NewRepositories().Subscribers, sender, wp, nil)
	ctx := context.Background()

	require.NoError(t, s.Subscribe(ctx, "  Reader@Example.com "))
	assert.ErrorIs(t, s.Subscribe(ctx, "reader@example.com"), ErrConflict)
	assert.ErrorIs(t, s.Subscribe(ctx, "not-an-email"), ErrValidation)
	assert.ErrorIs(t, s.Subscribe(ctx, ""), ErrValidation)

	wp.Stop()
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "reader@example.com", sender.sent[0].To)
}

func TestBlogCreatedNotifiesSubscribers(t *testing.T) {
	sender := &fakeSender{}
	wp := worker.NewPool(1)
	repos := memory.NewRepositories()
	subs := NewSubscriptionService(repos.Subscribers, sender, wp, nil)
	blogs := NewBlogService(repos.Blogs, subs)
	ctx := context.Background()

	require.NoError(t, repos.Subscribers.Create(ctx, models.Subscriber{Email: "a@example.com"}))
	require.NoError(t, repos.Subscribers.Create(ctx, models.Subscriber{Email: "b@example.com"}))

	_, err := blogs.Create(ctx, validInput())
	require.NoError(t, err)

	wp.Stop()
	require.Len(t, sender.sent, 2)
	for _, m := range sender.sent {
		assert.Equal(t, "New post: T", m.Subject)
	}
}

func TestSendFailureDoesNotFailSubscribe(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	wp := worker.NewPool(1)
	s := NewSubscriptionService(memory.NewRepositories().Subscribers, sender, wp, nil)

	assert.NoError(t, s.Subscribe(context.Background(), "reader@example.com"))
	wp.Stop()
	assert.Empty(t, sender.sent)
}
