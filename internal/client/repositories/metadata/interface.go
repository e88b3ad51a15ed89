// Package metadata is the client's local key-value cache. It holds the
// session token and the email it was issued for.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
