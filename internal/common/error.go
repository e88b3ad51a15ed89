// Package common defines shared constants and sentinel errors used across
// client and server layers of gophauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrValidation        = errors.New("validation error")
	ErrPasswordTooLong   = errors.New("password too long")
	ErrDuplicateIdentity = errors.New("user already exists")
	ErrNotFound          = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid password")
	ErrInternal          = errors.New("internal error")

	// Auth errors.
	ErrUnauthenticated = errors.New("no token provided")
	ErrInvalidToken    = errors.New("invalid token")

	// Token lifecycle errors. An expired token also matches ErrInvalidToken.
	ErrTokenExpired = errors.New("token expired")
)
