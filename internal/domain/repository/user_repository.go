// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"prepai/internal/domain/entity"
	"prepai/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserConflict is returned when a user with the same email already exists.
var ErrUserConflict = errors.New("user already exists")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A missing ID is generated and a missing role defaults to USER.
	Create(ctx context.Context, user *entity.User) error

	// FindRoleByEmail returns the stored role of the user with that email.
	FindRoleByEmail(ctx context.Context, email string) (entity.Role, error)
}
