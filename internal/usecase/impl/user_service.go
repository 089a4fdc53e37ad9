// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "prepai/internal/delivery/context"
	"prepai/internal/domain/entity"
	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/domain/repository"
	"prepai/internal/domain/service"
	"prepai/internal/domain/validation"
	"prepai/internal/errors"
	"prepai/internal/usecase"

	"go.uber.org/fx"
)

const (
	msgPasswordRequirements = "Password does not meet requirements"
	msgNameRequired         = "Name is required"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	policy       usecase.AuthPolicy
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthService service.OAuthService `optional:"true"`
	Policy       usecase.AuthPolicy
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		policy:       params.Policy,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a user with a credentials sign-in method.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := validation.NormalizeEmail(input.Email)

	if name == "" {
		return nil, domainerrors.NewValidationError(msgNameRequired, []string{msgNameRequired})
	}
	if !validation.ValidateEmail(email) {
		return nil, domainerrors.NewValidationError(validation.MsgInvalidEmail, []string{validation.MsgInvalidEmail})
	}
	if result := validation.ValidatePassword(input.Password); !result.Valid {
		srv.log(ctx).Debug("Password validation failed during sign-up", slog.Int("violations", len(result.Errors)))

		return nil, domainerrors.NewValidationError(msgPasswordRequirements, result.Errors)
	}

	// Hash outside the transaction, bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.WithStack(errors.Join(domainerrors.ErrPasswordHashFailed, err))
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up user by email")
		}

		newUser := &entity.User{
			Email: email,
			Name:  name,
			Role:  entity.RoleUser,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrUserConflict) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(createErr, "failed to create user during sign-up")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeCredentials,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if createErr := authRepo.CreateAuthentication(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create authentication during sign-up")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", registeredUser.ID))

	return &usecase.SignUpOutput{User: registeredUser}, nil
}

// SignInWithCredentials verifies an email and password and issues a session.
// Unknown emails and wrong passwords fail with the same error.
func (srv *userService) SignInWithCredentials(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	email := validation.NormalizeEmail(input.Email)

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeCredentials, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load signed-in user")
	}

	output, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID), slog.String("provider", entity.ProviderTypeCredentials.String()))

	return output, nil
}

// BeginExternalSignIn creates a state value and the provider consent URL.
func (srv *userService) BeginExternalSignIn(ctx context.Context) (*usecase.ExternalSignInStart, error) {
	if srv.oauthService == nil {
		return nil, domainerrors.ErrOAuthProviderDisabled
	}

	state, err := srv.oauthService.NewState()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create oauth state")
	}

	return &usecase.ExternalSignInStart{
		State: state,
		URL:   srv.oauthService.AuthCodeURL(state),
	}, nil
}

// CompleteExternalSignIn finishes the provider callback, provisioning and linking the user as needed.
func (srv *userService) CompleteExternalSignIn(ctx context.Context, input *usecase.CompleteExternalSignInInput) (*usecase.SignInOutput, error) {
	if srv.oauthService == nil {
		return nil, domainerrors.ErrOAuthProviderDisabled
	}
	if !srv.oauthService.ValidateState(input.State) {
		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "oauth state rejected")
	}

	oauthUser, err := srv.oauthService.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "failed to exchange authorization code")
	}
	if !oauthUser.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrAccessDenied, "provider email is not verified")
	}

	signInUser := &entity.SignInUser{
		Email: validation.NormalizeEmail(oauthUser.Email),
		Name:  oauthUser.Name,
		Image: oauthUser.AvatarURL,
	}
	account := &entity.Account{
		Provider:          srv.oauthService.Provider(),
		ProviderAccountID: oauthUser.ID,
	}

	allowed, err := srv.policy.OnExternalSignIn(ctx, signInUser, account)
	if err != nil {
		return nil, errors.Wrap(err, "external sign-in hook failed")
	}
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrAccessDenied, "external sign-in rejected")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		user, txErr = srv.linkExternalAccount(ctx, repoFactory, signInUser.Email, account)

		return txErr
	})
	if errors.Is(err, domainerrors.ErrOAuthAccountNotLinked) {
		srv.log(ctx).Warn("External sign-in refused for credentials account", slog.String("provider", account.Provider.String()))

		return nil, errors.Wrap(err, "failed to execute external sign-in transaction")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to link external account", slog.String("provider", account.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute external sign-in transaction")
	}

	output, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID), slog.String("provider", account.Provider.String()))

	return output, nil
}

// linkExternalAccount loads the user for the email and records the provider identity once.
// A user that registered with a password is never linked implicitly.
func (srv *userService) linkExternalAccount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	email string,
	account *entity.Account,
) (*entity.User, error) {
	user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for external sign-in")
	}

	authRepo := repoFactory.AuthRepo()
	_, err = authRepo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, account.Provider)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find linked authentication")
	}

	_, err = authRepo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeCredentials)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthAccountNotLinked, "user registered with credentials")
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find credentials authentication")
	}

	newAuth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       account.Provider,
		ProviderUserID: account.ProviderAccountID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to link external account")
	}

	return user, nil
}

// GetSession resolves a raw session token into the outward session.
func (srv *userService) GetSession(ctx context.Context, rawToken string) (*entity.Session, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	token, err := srv.tokenService.Parse(rawToken)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "failed to parse session token")
	}

	return srv.policy.Materialize(newSession(token), token), nil
}

// issueSession runs token issuance for a stored user and signs the result.
func (srv *userService) issueSession(ctx context.Context, user *entity.User) (*usecase.SignInOutput, error) {
	signInUser := &entity.SignInUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Image: user.AvatarURL,
	}

	token, err := srv.policy.Issue(ctx, &entity.SessionToken{}, signInUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	signed, err := srv.tokenService.Sign(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	return &usecase.SignInOutput{
		Token:     signed,
		ExpiresAt: token.ExpiresAt,
		Session:   srv.policy.Materialize(newSession(token), token),
	}, nil
}

// newSession builds the session from the standard claims only.
func newSession(token *entity.SessionToken) *entity.Session {
	return &entity.Session{
		User: &entity.SessionUser{
			Name:  token.Name,
			Email: token.Email,
			Image: token.Picture,
		},
		Expires: token.ExpiresAt,
	}
}
