package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// PasswordHasher provides one-way password hashing and verification.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Hashing the same password
	// twice yields different digests.
	Hash(password string) (string, error)

	// Verify reports whether password produced digest.
	// Returns (true, nil) on match, (false, nil) on mismatch, or an error
	// when digest is not a valid bcrypt hash.
	Verify(password, digest string) (bool, error)
}

// BcryptHasher implements PasswordHasher with bcrypt. The salt is embedded
// in the digest and comparison is constant-time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given work factor. Costs outside
// bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrValidation)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %w", common.ErrValidation, common.ErrPasswordTooLong)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
