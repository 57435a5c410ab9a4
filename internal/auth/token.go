package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"task-desk.com/task-desk/internal/domain"
)

var ErrInvalidToken = errors.New("invalid or expired access token")

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenProvider issues and verifies the short-lived access tokens. Refresh
// tokens are opaque and live in the SessionStore, not here.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{secret: []byte(secret), ttl: ttl}
}

func (p *TokenProvider) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Verify returns the user id and role carried by a valid token.
func (p *TokenProvider) Verify(tokenString string) (string, domain.Role, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}

	role, err := domain.NewRole(claims.Role)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	return claims.Subject, role, nil
}
