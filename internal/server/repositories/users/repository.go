// Package users is the credential store: one record per registered
// identity, unique by email. Implementations return common.ErrorNotFound
// for missing records and common.ErrorAlreadyExists when the store's own
// uniqueness constraint rejects an insert.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type Repository interface {
	// Create inserts user and returns it with ID and CreatedAt filled in.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
