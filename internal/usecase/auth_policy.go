package usecase

import (
	"context"

	"prepai/internal/domain/entity"
)

// AuthPolicy holds the decisions taken at the three points of a sign-in lifecycle.
type AuthPolicy interface {
	// Issue enriches a token being issued. A nil user means the token is being refreshed,
	// not issued at login, and is returned unchanged.
	Issue(ctx context.Context, token *entity.SessionToken, user *entity.SignInUser) (*entity.SessionToken, error)

	// Materialize copies identity claims from the token onto the outward session.
	Materialize(session *entity.Session, token *entity.SessionToken) *entity.Session

	// OnExternalSignIn provisions a user for a federated identity seen for the first time.
	// It reports whether the sign-in may proceed.
	OnExternalSignIn(ctx context.Context, user *entity.SignInUser, account *entity.Account) (bool, error)
}
