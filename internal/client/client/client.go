package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error)
	Login(ctx context.Context, emailID, password string) (*models.Session, error)
	UserData(ctx context.Context, token string) (*models.Profile, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}
