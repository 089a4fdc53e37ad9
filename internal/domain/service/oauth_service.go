package service

import (
	"context"

	"prepai/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthService runs the authorization code flow against an external provider.
type OAuthService interface {
	// NewState returns a single-use state value for CSRF protection.
	NewState() (string, error)

	// ValidateState consumes a state value. It reports false for unknown, reused or expired states.
	ValidateState(state string) bool

	// AuthCodeURL builds the provider consent URL for the given state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the verified provider profile.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)

	// Provider returns the OAuth provider type
	Provider() entity.ProviderType
}
