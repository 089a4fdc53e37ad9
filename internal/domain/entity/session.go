package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionToken holds the identity claims signed into the client-held session credential.
// UserID and Role are set once at login and re-read on every request.
type SessionToken struct {
	UserID    uuid.UUID
	Role      Role
	Name      string
	Email     string
	Picture   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is the outward view of a signed-in user returned to clients.
type Session struct {
	User    *SessionUser `json:"user"`
	Expires time.Time    `json:"expires"`
}

// SessionUser is the user part of a Session.
type SessionUser struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
	Role  string `json:"role,omitempty"`
}
