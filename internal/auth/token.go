// Package auth issues and verifies the bearer tokens that carry a principal.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"pdfshare/internal/apperr"
)

// DefaultTokenTTL is used when the configured lifetime is not positive.
const DefaultTokenTTL = 10 * time.Hour

// Claims is the token payload. Email is the principal.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager returns a manager for the given secret. An empty secret is rejected.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for email and its expiry.
func (m *TokenManager) Issue(email string) (string, time.Time, error) {
	if strings.TrimSpace(email) == "" {
		return "", time.Time{}, apperr.New(apperr.KindInvalidInput, "email is required")
	}
	now := m.now()
	exp := now.Add(m.ttl)
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Authenticate verifies token and returns the principal it carries.
func (m *TokenManager) Authenticate(token string) (string, error) {
	if token == "" {
		return "", apperr.New(apperr.KindUnauthorized, "missing token")
	}
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", apperr.Wrap(apperr.KindUnauthorized, "invalid or expired token", err)
	}
	if claims.Email == "" {
		return "", apperr.New(apperr.KindUnauthorized, "token carries no principal")
	}
	return claims.Email, nil
}
