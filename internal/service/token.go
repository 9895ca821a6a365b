package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/config"
)

// TokenManager issues and verifies the signed identity tokens carried in the
// Authorization header. Verification is a local signature check, never a
// store round-trip.
type TokenManager interface {
	Issue(userID uuid.UUID) (string, error)
	// Verify returns the user id the token was issued for. Expired,
	// tampered and malformed tokens all fail with the same ErrUnauthorized;
	// callers must not learn which it was.
	Verify(token string) (uuid.UUID, error)
}

type tokenClaims struct {
	jwt.RegisteredClaims
}

// JWTManager signs HS256 tokens with a process-wide secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

var _ TokenManager = (*JWTManager)(nil)

func NewJWTManager(cfg config.AuthConfig) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	ttl, err := time.ParseDuration(cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_TTL", ErrMisconfigured)
	}

	return &JWTManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
	}, nil
}

func (m *JWTManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) Verify(tokenStr string) (uuid.UUID, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}
