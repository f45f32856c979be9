package authorizer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/layer-3/gavel/ports"
)

// AudienceAuthority marks a token as an auction-creation capability
const AudienceAuthority = "auction:authority"

// DefaultAuthorityExpiry is the default lifetime of an issued authority token
const DefaultAuthorityExpiry = 365 * 24 * time.Hour

// AuthorityClaims are the claims carried by an authority token
type AuthorityClaims struct {
	jwt.RegisteredClaims
}

// JWTAuthorizer implements the Authorizer interface with ES256-signed JWTs.
// The token is a capability: holding a valid token issued to an identity
// grants that identity unlimited auction creations until expiry.
type JWTAuthorizer struct {
	signKey *ecdsa.PrivateKey
}

// NewJWTAuthorizer creates a new JWT authorizer
func NewJWTAuthorizer(signKey *ecdsa.PrivateKey) *JWTAuthorizer {
	return &JWTAuthorizer{signKey: signKey}
}

// IssueToken mints an authority token for the given holder
func (j *JWTAuthorizer) IssueToken(holder string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultAuthorityExpiry
	}
	now := time.Now()

	claims := AuthorityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   holder,
			Audience:  jwt.ClaimStrings{AudienceAuthority},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signedToken, err := token.SignedString(j.signKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign authority token: %w", err)
	}

	return signedToken, nil
}

// IsAuthorized reports whether the token is a valid authority capability
// held by the caller. Invalid or expired tokens deny without error; errors
// are reserved for infrastructure failures.
func (j *JWTAuthorizer) IsAuthorized(ctx context.Context, caller, token string) (bool, error) {
	parsed, err := jwt.ParseWithClaims(token, &AuthorityClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &j.signKey.PublicKey, nil
	}, jwt.WithAudience(AudienceAuthority))

	if err != nil || !parsed.Valid {
		return false, nil
	}

	claims, ok := parsed.Claims.(*AuthorityClaims)
	if !ok {
		return false, nil
	}

	return claims.Subject == caller, nil
}

var _ ports.Authorizer = (*JWTAuthorizer)(nil)
