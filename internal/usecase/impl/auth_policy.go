package impl

import (
	"context"
	"log/slog"

	deliverycontext "prepai/internal/delivery/context"
	"prepai/internal/domain/entity"
	"prepai/internal/domain/repository"
	"prepai/internal/errors"
	"prepai/internal/usecase"

	"go.uber.org/fx"
)

// authPolicy implements the AuthPolicy interface on top of the user store.
type authPolicy struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AuthPolicyParams holds dependencies for AuthPolicy, injected by Fx.
type AuthPolicyParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAuthPolicy creates the sign-in lifecycle policy.
func NewAuthPolicy(params AuthPolicyParams) usecase.AuthPolicy {
	return &authPolicy{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (p *authPolicy) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Issue attaches the stored role and the user id to a token at login.
func (p *authPolicy) Issue(ctx context.Context, token *entity.SessionToken, user *entity.SignInUser) (*entity.SessionToken, error) {
	if token == nil {
		token = &entity.SessionToken{}
	}
	if user == nil {
		return token, nil
	}

	role, err := p.userRepo.FindRoleByEmail(ctx, user.Email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		role = entity.DefaultRole
	case err != nil:
		return nil, errors.Wrap(err, "failed to look up role for token issuance")
	}

	token.Role = entity.RoleOrDefault(role)
	token.UserID = user.ID
	if token.Email == "" {
		token.Email = user.Email
	}
	if token.Name == "" {
		token.Name = user.Name
	}
	if token.Picture == "" {
		token.Picture = user.Image
	}

	p.log(ctx).Debug("Issued session token", slog.Any("userID", token.UserID), slog.String("role", token.Role.String()))

	return token, nil
}

// Materialize copies id and role from the token onto the session. Other session fields are left untouched.
func (p *authPolicy) Materialize(session *entity.Session, token *entity.SessionToken) *entity.Session {
	if session == nil || token == nil {
		return session
	}
	if session.User == nil {
		session.User = &entity.SessionUser{}
	}

	session.User.ID = token.UserID.String()
	session.User.Role = token.Role.String()

	return session
}

// OnExternalSignIn creates a USER for a federated email seen for the first time. Sign-in is never blocked.
func (p *authPolicy) OnExternalSignIn(ctx context.Context, user *entity.SignInUser, account *entity.Account) (bool, error) {
	if account == nil || !account.Provider.IsExternal() || user == nil {
		return true, nil
	}

	_, err := p.userRepo.FindByEmail(ctx, user.Email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.Wrap(err, "failed to look up user for external sign-in")
	}

	newUser := &entity.User{
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.Image,
		Role:      entity.RoleUser,
	}
	err = p.userRepo.Create(ctx, newUser)
	if errors.Is(err, repository.ErrUserConflict) {
		// A concurrent first sign-in for the same email won the insert.
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to provision user for external sign-in")
	}

	p.log(ctx).Info("Provisioned user on first external sign-in",
		slog.Any("userID", newUser.ID),
		slog.String("provider", account.Provider.String()))

	return true, nil
}
