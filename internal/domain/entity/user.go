// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a single account, identified by its unique email address.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Unique, used as the login identifier.
	Name      string    // The user's display name.
	AvatarURL string    // Profile picture, usually provided by the OAuth provider.
	Role      Role      // Authorization level, RoleUser unless changed by an administrator.
	CreatedAt time.Time
	UpdatedAt time.Time
}
