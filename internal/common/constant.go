// Package common contains shared constants and sentinel errors used across
// gophauth components.
package common

import "time"

// TokenCookieName is the name of the HTTP-only cookie carrying the session
// token.
const TokenCookieName = "token"

// AuthorizationHeaderName carries the session token as "Bearer <token>".
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the Authorization header.
const BearerPrefix = "Bearer "

// DefaultTokenValidityDuration is the lifetime of an issued session token.
const DefaultTokenValidityDuration = 24 * time.Hour
