// Package services contains application services for the gophauth client.
// AuthService drives the remote API and keeps the session in the local cache.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

const (
	tokenKey = "jwtToken"
	emailKey = "emailId"
)

var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication operations for the CLI.
//
// Register and Login persist the issued token locally, WhoAmI presents it
// to the server and Logout forgets it.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error)
	Login(ctx context.Context, emailID string, password []byte) (*models.Session, error)
	WhoAmI(ctx context.Context) (*models.Profile, error)
	Logout(ctx context.Context) error
	CachedEmail(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	s, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := a.storeSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *authService) Login(ctx context.Context, emailID string, password []byte) (*models.Session, error) {
	s, err := a.client.Login(ctx, emailID, string(password))
	if err != nil {
		return nil, err
	}
	if err := a.storeSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *authService) storeSession(ctx context.Context, s *models.Session) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, s.Token); err != nil {
			return err
		}
		return repo.Set(ctx, emailKey, s.User.EmailID)
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// WhoAmI fetches the profile for the cached token. A token the server
// refuses is dropped from the cache.
func (a *authService) WhoAmI(ctx context.Context) (*models.Profile, error) {
	repo := a.getMetadataRepo()

	token, ok, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, ErrNotLoggedIn
	}

	p, err := a.client.UserData(ctx, token)
	if errors.Is(err, client.ErrUnauthorized) {
		if cerr := repo.Clear(ctx); cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Logout clears the local session first. An unreachable server still
// counts as a successful logout.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.getMetadataRepo().Clear(ctx); err != nil {
		return err
	}
	if err := a.client.Logout(ctx); err != nil && !errors.Is(err, client.ErrUnavailable) {
		return err
	}
	return nil
}

// CachedEmail returns the email of the last session, or "" if none.
func (a *authService) CachedEmail(ctx context.Context) (string, error) {
	v, _, err := a.getMetadataRepo().Get(ctx, emailKey)
	return v, err
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
