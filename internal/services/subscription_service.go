package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/baharkarakas/blog-backend/internal/api/validate"
	"github.com/baharkarakas/blog-backend/internal/mail"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

// Submitter queues background work; *worker.Pool satisfies it.
type Submitter interface {
	Submit(f func()) bool
}

const sendTimeout = 30 * time.Second

// SubscriptionService manages newsletter subscribers. Mail goes out on the
// worker pool so a slow relay never delays the HTTP response.
type SubscriptionService struct {
	r      repo.Subscribers
	sender mail.Sender
	wp     Submitter
	log    *slog.Logger
}

func NewSubscriptionService(r repo.Subscribers, sender mail.Sender, wp Submitter, log *slog.Logger) *SubscriptionService {
	if log == nil {
		log = slog.Default()
	}
	return &SubscriptionService{r: r, sender: sender, wp: wp, log: log}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if ef := validate.Email("email", email); ef != nil {
		return invalid("A valid email address is required", validate.Errs{*ef})
	}

	err := s.r.Create(ctx, models.Subscriber{Email: email})
	if errors.Is(err, repo.ErrDuplicate) {
		return newError(ErrConflict, "This email is already subscribed")
	}
	if err != nil {
		return err
	}

	s.dispatch("welcome", mail.Message{
		To:      email,
		Subject: "Thanks for subscribing",
		Body:    "You will get an email whenever a new post is published.",
	})
	return nil
}

// BlogCreated emails every subscriber about b.
func (s *SubscriptionService) BlogCreated(b models.Blog) {
	ok := s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		subs, err := s.r.List(ctx)
		if err != nil {
			s.log.Error("list subscribers", "err", err)
			return
		}
		for _, sub := range subs {
			s.send(ctx, "new_blog", mail.Message{
				To:      sub.Email,
				Subject: fmt.Sprintf("New post: %s", b.Title),
				Body:    fmt.Sprintf("%s published \"%s\" in %s.", b.Author, b.Title, b.Category),
			})
		}
	})
	if !ok {
		s.log.Warn("worker pool busy or stopped, new post notification dropped", "blog_id", b.ID)
	}
}

func (s *SubscriptionService) dispatch(kind string, m mail.Message) {
	ok := s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		s.send(ctx, kind, m)
	})
	if !ok {
		s.log.Warn("worker pool busy or stopped, email dropped", "kind", kind, "to", m.To)
	}
}

func (s *SubscriptionService) send(ctx context.Context, kind string, m mail.Message) {
	if err := s.sender.Send(ctx, m); err != nil {
		metrics.EmailsTotal.WithLabelValues(kind, "failed").Inc()
		s.log.Error("send email", "kind", kind, "to", m.To, "err", err)
		return
	}
	metrics.EmailsTotal.WithLabelValues(kind, "sent").Inc()
}
