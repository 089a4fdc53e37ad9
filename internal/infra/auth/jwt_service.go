package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"prepai/config"
	"prepai/internal/domain/entity"
	"prepai/internal/domain/service"
	"prepai/internal/errors"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    ttl,
	}, nil
}

// Sign encodes the token. Zero issue and expiry times are stamped onto token before signing.
func (s *jwtService) Sign(token *entity.SessionToken) (string, error) {
	if token.IssuedAt.IsZero() {
		token.IssuedAt = time.Now()
	}
	if token.ExpiresAt.IsZero() {
		token.ExpiresAt = token.IssuedAt.Add(s.ttl)
	}

	claims := service.Claims{
		Role:    token.Role.String(),
		Name:    token.Name,
		Email:   token.Email,
		Picture: token.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   token.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(token.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(token.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Parse checks the signature, algorithm and expiry of a token string.
func (s *jwtService) Parse(tokenString string) (*entity.SessionToken, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session subject")
	}

	token := &entity.SessionToken{
		UserID:    userID,
		Role:      entity.RoleOrDefault(entity.Role(claims.Role)),
		Name:      claims.Name,
		Email:     claims.Email,
		Picture:   claims.Picture,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}

	return token, nil
}

// TTL returns the configured session lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
