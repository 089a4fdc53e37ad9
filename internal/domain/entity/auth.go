package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names a way of signing in.
type ProviderType string

const (
	// ProviderTypeCredentials is the local email/password flow.
	ProviderTypeCredentials ProviderType = "credentials"
	// ProviderTypeGoogle is Google OAuth.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsExternal reports whether the provider is a federated identity source.
func (p ProviderType) IsExternal() bool {
	return p == ProviderTypeGoogle
}

// Authentication represents a single method of logging in (a credential).
// A user's email/password is one record, a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // The email for credentials, Google's 'sub' claim for google.
	PasswordHash   string // Only set for ProviderTypeCredentials.
	CreatedAt      time.Time
}

// SignInUser is the identity presented while signing in, before it is reconciled with storage.
type SignInUser struct {
	ID    uuid.UUID
	Email string
	Name  string
	Image string
}

// Account describes the provider an identity signed in through.
type Account struct {
	Provider          ProviderType
	ProviderAccountID string
}
