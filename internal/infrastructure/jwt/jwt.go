package jwt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HMAC-SHA256 needs at least a 256-bit key.
const minKeyBytes = 32

const clockSkewLeeway = 60 * time.Second

var ErrInvalidToken = errors.New("invalid token")

type Service struct {
	key       []byte
	expiresIn time.Duration
}

// New decodes the base64 secret and refuses keys shorter than 32 bytes: a
// weak signing key is a configuration error, not something to tolerate at
// runtime.
func New(secretB64 string, expiresIn time.Duration) (*Service, error) {
	key, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return nil, fmt.Errorf("jwt secret is not valid base64: %w", err)
	}
	if len(key) < minKeyBytes {
		return nil, fmt.Errorf("jwt secret must decode to at least %d bytes, got %d", minKeyBytes, len(key))
	}

	return &Service{key: key, expiresIn: expiresIn}, nil
}

// GenerateToken issues a signed token carrying the user's email as subject.
func (s *Service) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.key)
}

// GetSubject verifies signature and expiry (with a small clock-skew leeway)
// and returns the token subject. Any structural, signature or expiry failure
// comes back as ErrInvalidToken; this function never panics and callers must
// treat the error as "unauthenticated", not as a fault.
func (s *Service) GetSubject(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkewLeeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
