package repository

import (
	"context"

	"prepai/internal/domain/entity"
	"prepai/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrAuthConflict is returned when the provider identity is already linked.
	ErrAuthConflict = errors.New("authentication method already exists")
)

// AuthRepository defines the operations for sign-in method persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (credentials or social login).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUserIDAndProvider retrieves the method of a given provider linked to a user.
	FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)
}
