package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by VerifyPassword when the password does not match the hash.
var ErrMismatch = errors.New("password mismatch")

// ErrTooLong: bcrypt only looks at the first 72 bytes and refuses longer input.
var ErrTooLong = errors.New("password longer than 72 bytes")

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrTooLong
	}
	return string(b), err
}

func (h *Hasher) Verify(plain, hash string) error {
	return VerifyPassword(plain, hash)
}

func VerifyPassword(plain, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
