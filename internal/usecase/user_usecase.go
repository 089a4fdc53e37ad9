// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"prepai/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput defines the data required for a user to sign in with credentials.
type SignInInput struct {
	Email    string
	Password string
}

// CompleteExternalSignInInput carries the provider callback parameters.
type CompleteExternalSignInInput struct {
	Code  string
	State string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's basic information.
type SignUpOutput struct {
	User *entity.User
}

// SignInOutput returns the signed session token and the session it materializes into.
type SignInOutput struct {
	Token     string
	ExpiresAt time.Time
	Session   *entity.Session
}

// ExternalSignInStart is the provider redirect for an external sign-in.
type ExternalSignInStart struct {
	State string
	URL   string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	SignInWithCredentials(ctx context.Context, input *SignInInput) (*SignInOutput, error)
	BeginExternalSignIn(ctx context.Context) (*ExternalSignInStart, error)
	CompleteExternalSignIn(ctx context.Context, input *CompleteExternalSignInInput) (*SignInOutput, error)
	GetSession(ctx context.Context, rawToken string) (*entity.Session, error)
}
