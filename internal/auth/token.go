package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Tazrian08/Organizer/internal/model"
)

var (
	ErrSecretRequired = errors.New("signing secret is required")
	ErrInvalidToken   = errors.New("invalid or expired token")
)

// Claims is the signed payload carried by an access token.
// The subject is the user id; Role mirrors the user's role at issue time.
type Claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies access tokens with a shared HMAC secret.
// Token issuance itself belongs to the login collaborator; this type exists so
// verification and issuance agree on one claim shape.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given secret and token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given identity with the configured expiry window.
func (t *TokenIssuer) Issue(identity model.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses the token and returns the identity it was issued for.
// Any parse, signature, or expiry failure surfaces as ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (model.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return model.Identity{}, ErrInvalidToken
	}
	return model.Identity{ID: claims.Subject, Role: claims.Role}, nil
}
