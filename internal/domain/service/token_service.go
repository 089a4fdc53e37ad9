package service

import (
	"time"

	"prepai/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// Sign encodes the token, stamping issue and expiry times when they are zero.
	Sign(token *entity.SessionToken) (string, error)

	// Parse verifies the signature and expiry of a token string.
	Parse(tokenString string) (*entity.SessionToken, error)

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
