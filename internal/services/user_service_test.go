package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/repository/memory"
)

func newUserService() *UserService {
	return NewUserService(memory.NewRepositories().Users, auth.NewHasher(bcrypt.MinCost))
}

func TestRegisterTwiceConflicts(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "secret"))

	err := s.Register(ctx, "alice", "other")
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username already exists", err.Error())
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	repos := memory.NewRepositories()
	s := NewUserService(repos.Users, auth.NewHasher(bcrypt.MinCost))
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "alice", "secret"))
	u, err := repos.Users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.NoError(t, auth.VerifyPassword("secret", u.PasswordHash))
}

func TestRegisterValidation(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	assert.ErrorIs(t, s.Register(ctx, "", "secret"), ErrValidation)
	assert.ErrorIs(t, s.Register(ctx, "alice", ""), ErrValidation)
	assert.ErrorIs(t, s.Register(ctx, "alice", strings.Repeat("p", 73)), ErrValidation)
}

func TestConcurrentRegistrationsOneWins(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	const n = 10
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Register(ctx, "bob", "secret")
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrConflict)
	}
	assert.Equal(t, 1, ok)
}

func TestLogin(t *testing.T) {
	s := newUserService()
	ctx := context.Background()
	require.NoError(t, s.Register(ctx, "alice", "secret"))

	info, err := s.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrUnknownUser)

	_, err = s.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrUnknownUser)

	_, err = s.Login(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}
