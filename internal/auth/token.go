package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/campuslex/campuslex/internal/shared"
)

const defaultTokenTTL = 15 * time.Minute

// Claims is the signed payload of an access token. Subject carries the
// username; Kind records which principal store it resolves against.
type Claims struct {
	Kind string `json:"type"`
	jwt.RegisteredClaims
}

// TokenCodec encodes and decodes HS256-signed, time-limited identity tokens.
type TokenCodec struct {
	key []byte
	ttl time.Duration
}

// NewTokenCodec constructs a codec with the shared signing secret.
// A non-positive ttl falls back to 15 minutes.
func NewTokenCodec(secret string, ttl time.Duration) TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return TokenCodec{key: []byte(secret), ttl: ttl}
}

// TTL exposes the configured token lifetime.
func (c TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given username and kind, expiring at now+TTL.
func (c TokenCodec) Issue(username string, kind shared.Kind) (string, error) {
	now := time.Now()
	claims := Claims{
		Kind: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.key)
}

// Parse verifies signature and expiry and returns the embedded claims.
// Signature mismatch, malformed structure, and past expiry all collapse to
// shared.ErrInvalidToken; expiry is checked with zero leeway.
func (c TokenCodec) Parse(token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.key, nil
	})
	if err != nil {
		return nil, shared.ErrInvalidToken
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, shared.ErrInvalidToken
	}
	return claims, nil
}
