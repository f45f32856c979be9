package authorizer

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const holder = "0xAD0000000000000000000000000000000000000d"

func newTestAuthorizer(t *testing.T) (*JWTAuthorizer, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	return NewJWTAuthorizer(key), key
}

func TestJWTAuthorizer_ValidTokenAuthorizesHolder(t *testing.T) {
	authorizer, _ := newTestAuthorizer(t)

	token, err := authorizer.IssueToken(holder, time.Hour)
	require.NoError(t, err)

	ok, err := authorizer.IsAuthorized(context.Background(), holder, token)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJWTAuthorizer_TokenDoesNotAuthorizeOtherCallers(t *testing.T) {
	authorizer, _ := newTestAuthorizer(t)

	token, err := authorizer.IssueToken(holder, time.Hour)
	require.NoError(t, err)

	ok, err := authorizer.IsAuthorized(context.Background(), "0xB100000000000000000000000000000000000001", token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTAuthorizer_RejectsGarbageToken(t *testing.T) {
	authorizer, _ := newTestAuthorizer(t)

	ok, err := authorizer.IsAuthorized(context.Background(), holder, "not-a-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTAuthorizer_RejectsTokenFromForeignKey(t *testing.T) {
	authorizer, _ := newTestAuthorizer(t)
	foreign, _ := newTestAuthorizer(t)

	token, err := foreign.IssueToken(holder, time.Hour)
	require.NoError(t, err)

	ok, err := authorizer.IsAuthorized(context.Background(), holder, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTAuthorizer_RejectsExpiredToken(t *testing.T) {
	authorizer, key := newTestAuthorizer(t)

	claims := AuthorityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   holder,
			Audience:  jwt.ClaimStrings{AudienceAuthority},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	require.NoError(t, err)

	ok, err := authorizer.IsAuthorized(context.Background(), holder, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTAuthorizer_RejectsWrongAudience(t *testing.T) {
	authorizer, key := newTestAuthorizer(t)

	claims := jwt.RegisteredClaims{
		Subject:   holder,
		Audience:  jwt.ClaimStrings{"session:access"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	require.NoError(t, err)

	ok, err := authorizer.IsAuthorized(context.Background(), holder, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaticAuthorizer(t *testing.T) {
	authorizer := NewStaticAuthorizer()
	authorizer.Grant(holder, "tok")

	ok, err := authorizer.IsAuthorized(context.Background(), holder, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = authorizer.IsAuthorized(context.Background(), "0xB1", "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = authorizer.IsAuthorized(context.Background(), holder, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}
