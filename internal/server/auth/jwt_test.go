package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

var issuedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newCodec(secret string, at time.Time) *TokenCodec {
	return NewTokenCodec([]byte(secret), 24*time.Hour).WithClock(fixedClock(at))
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := newCodec("super-secret", issuedAt)

	tok, err := codec.Issue("user-123", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.True(t, issuedAt.Equal(claims.IssuedAt.Time))
	assert.True(t, issuedAt.Add(24*time.Hour).Equal(claims.ExpiresAt.Time))
	assert.Equal(t, 24*time.Hour, codec.TTL())
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	tok, err := newCodec("secret", issuedAt).Issue("u1", "u1@x.io")
	require.NoError(t, err)

	_, err = newCodec("secret", issuedAt.Add(24*time.Hour-time.Second)).Verify(tok)
	require.NoError(t, err, "token must be valid just before expiry")

	for _, at := range []time.Time{issuedAt.Add(24 * time.Hour), issuedAt.Add(25 * time.Hour)} {
		_, err = newCodec("secret", at).Verify(tok)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrTokenExpired)
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newCodec("right-secret", issuedAt).Issue("u2", "u2@x.io")
	require.NoError(t, err)

	_, err = newCodec("wrong-secret", issuedAt).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.False(t, errors.Is(err, common.ErrTokenExpired))
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	codec := newCodec("k", issuedAt)
	tok, err := codec.Issue("u3", "u3@x.io")
	require.NoError(t, err)

	other, err := codec.Issue("someone-else", "evil@x.io")
	require.NoError(t, err)

	// header and signature from the first token, payload from the second
	a := strings.Split(tok, ".")
	b := strings.Split(other, ".")
	forged := strings.Join([]string{a[0], b[1], a[2]}, ".")

	_, err = codec.Verify(forged)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
		UserID:           "u4",
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	codec := newCodec("k", issuedAt)
	for _, tok := range []string{hs512, none} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	}
}

func TestVerify_RequiresExpiryAndSubject(t *testing.T) {
	t.Parallel()

	codec := newCodec("k", issuedAt)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userID": "u5"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = codec.Verify(noExp)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	noSubject, err := codec.Issue("", "nobody@x.io")
	require.NoError(t, err)
	_, err = codec.Verify(noSubject)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	codec := newCodec("k", issuedAt)
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, "token %q", tok)
	}
}
