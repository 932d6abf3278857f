package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/blog-backend/internal/api/validate"
	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type UserService struct {
	r      repo.Users
	hasher *auth.Hasher
}

func NewUserService(r repo.Users, h *auth.Hasher) *UserService {
	return &UserService{r: r, hasher: h}
}

// Register stores a new user with a bcrypt hash of password. The store's
// uniqueness constraint decides races between concurrent registrations.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	err := s.register(ctx, username, password)
	metrics.RegistrationsTotal.WithLabelValues(resultLabel(err, map[error]string{
		ErrConflict:   "duplicate",
		ErrValidation: "invalid",
	})).Inc()
	return err
}

func (s *UserService) register(ctx context.Context, username, password string) error {
	if err := validate.Collect(
		validate.Required("username", username),
		validate.Required("password", password),
	); err != nil {
		return invalid("Username and password are required", err)
	}

	_, err := s.r.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return newError(ErrConflict, "Username already exists")
	case !errors.Is(err, repo.ErrNotFound):
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrTooLong) {
		return invalid("Password must be at most 72 bytes", err)
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.r.Create(ctx, models.User{Username: username, PasswordHash: hash})
	if errors.Is(err, repo.ErrDuplicate) {
		return newError(ErrConflict, "Username already exists")
	}
	return err
}

// Login returns the public profile of username when password matches.
func (s *UserService) Login(ctx context.Context, username, password string) (models.UserInfo, error) {
	info, err := s.login(ctx, username, password)
	metrics.LoginsTotal.WithLabelValues(resultLabel(err, map[error]string{
		ErrUnknownUser:  "unknown_user",
		ErrUnauthorized: "bad_password",
		ErrValidation:   "invalid",
	})).Inc()
	return info, err
}

func (s *UserService) login(ctx context.Context, username, password string) (models.UserInfo, error) {
	if err := validate.Collect(
		validate.Required("username", username),
		validate.Required("password", password),
	); err != nil {
		return models.UserInfo{}, invalid("Username and password are required", err)
	}

	u, err := s.r.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return models.UserInfo{}, newError(ErrUnknownUser, "User not found")
	}
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("lookup user: %w", err)
	}

	err = s.hasher.Verify(password, u.PasswordHash)
	if errors.Is(err, auth.ErrMismatch) {
		return models.UserInfo{}, newError(ErrUnauthorized, "Invalid password")
	}
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("verify password: %w", err)
	}
	return u.Info(), nil
}

func resultLabel(err error, kinds map[error]string) string {
	if err == nil {
		return "ok"
	}
	for kind, label := range kinds {
		if errors.Is(err, kind) {
			return label
		}
	}
	return "error"
}
