// Package auth holds the server's credential primitives: password hashing
// and the signed, stateless session token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Claims is the token payload: the identity id and email plus the standard
// issued-at and expiry claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userID"`
	Email  string `json:"email"`
}

// TokenCodec issues and verifies HS256 session tokens. The server keeps no
// record of issued tokens, so a token stays valid until it expires.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec returns a codec signing with secret and issuing tokens valid
// for ttl.
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the codec reading the current time from now.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	cp := *c
	cp.now = now
	return &cp
}

// TTL is the validity window of issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given identity, expiring ttl from now.
func (c *TokenCodec) Issue(userID, email string) (string, error) {
	issuedAt := c.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
// Every failure matches common.ErrInvalidToken; expired tokens also match
// common.ErrTokenExpired.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	// exp is exclusive: a token presented at its expiry instant is rejected.
	if !c.now().Before(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
	}

	return claims, nil
}
