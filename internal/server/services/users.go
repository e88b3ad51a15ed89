// Package services holds the server's application logic. UserService runs
// the register, login, profile and logout flows on top of the credential
// store, the password hasher and the session token codec.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// TokenCodec is the part of auth.TokenCodec the service depends on.
type TokenCodec interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

type RegisterInput struct {
	FirstName   string
	SurName     string
	DateOfBirth string
	Gender      string
	EmailID     string
	Password    string
}

func (in RegisterInput) complete() bool {
	for _, v := range []string{in.FirstName, in.SurName, in.DateOfBirth, in.Gender, in.EmailID, in.Password} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Session is what a successful register or login hands back to the caller.
type Session struct {
	Token string
	User  models.PublicProfile
}

type UserService struct {
	repo   users.Repository
	hasher auth.PasswordHasher
	tokens TokenCodec
	logger logging.Logger
}

func NewUserService(repo users.Repository, hasher auth.PasswordHasher, tokens TokenCodec, logger logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "user_service"),
	}
}

// Register creates a new identity and opens a session for it.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if !in.complete() {
		return nil, common.ErrValidation
	}

	_, err := s.repo.GetByEmail(ctx, in.EmailID)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateIdentity
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.internal(ctx, "lookup user", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		return nil, s.internal(ctx, "hash password", err)
	}

	user, err := s.repo.Create(ctx, &models.User{
		FirstName:    in.FirstName,
		SurName:      in.SurName,
		DateOfBirth:  in.DateOfBirth,
		Gender:       in.Gender,
		EmailID:      in.EmailID,
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race with a concurrent registration for the same email
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrDuplicateIdentity
		}
		return nil, s.internal(ctx, "create user", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)

	return s.openSession(ctx, user)
}

// Login checks the password of an existing identity and opens a session.
func (s *UserService) Login(ctx context.Context, emailID, password string) (*Session, error) {
	if strings.TrimSpace(emailID) == "" || password == "" {
		return nil, common.ErrValidation
	}

	user, err := s.repo.GetByEmail(ctx, emailID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, s.internal(ctx, "lookup user", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, s.internal(ctx, "verify password", err)
	}
	if !ok {
		return nil, common.ErrInvalidCredential
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)

	return s.openSession(ctx, user)
}

// Authenticate validates a session token and returns its claims.
func (s *UserService) Authenticate(token string) (*auth.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, common.ErrUnauthenticated
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Profile returns the public profile of the identity with the given id.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, s.internal(ctx, "lookup user", err)
	}
	p := user.Profile()
	return &p, nil
}

// FetchProfile authenticates token and returns the profile it names.
func (s *UserService) FetchProfile(ctx context.Context, token string) (*models.PublicProfile, error) {
	claims, err := s.Authenticate(token)
	if err != nil {
		return nil, err
	}
	return s.Profile(ctx, claims.UserID)
}

// Logout always succeeds. Tokens are stateless, so an issued token stays
// valid until it expires; the caller is expected to discard it.
func (s *UserService) Logout(ctx context.Context) error {
	s.logger.Debug(ctx, "logout")
	return nil
}

func (s *UserService) openSession(ctx context.Context, user *models.User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID, user.EmailID)
	if err != nil {
		return nil, s.internal(ctx, "issue token", err)
	}
	return &Session{Token: token, User: user.Profile()}, nil
}

func (s *UserService) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrInternal, op, err)
}
