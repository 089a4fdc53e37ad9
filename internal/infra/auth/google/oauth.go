// Package google implements the Google sign-in provider.
package google

import (
	"context"
	"log/slog"
	"strings"

	"prepai/config"
	"prepai/internal/domain/entity"
	"prepai/internal/domain/service"
	"prepai/internal/errors"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// idTokenValidator verifies a Google ID token for the given audience.
type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// OAuthService runs the Google authorization code flow.
type OAuthService struct {
	oauthConfig *oauth2.Config
	states      *stateStore
	validate    idTokenValidator
	logger      *slog.Logger
}

// NewOAuthService creates the Google OAuth service. It returns nil when Google sign-in is disabled.
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	if cfg.GoogleOAuth == nil || !cfg.GoogleOAuth.Enabled {
		logger.Info("Google sign-in disabled")

		return nil
	}

	return newOAuthService(cfg.GoogleOAuth, googleoauth.Endpoint, idtoken.Validate, logger)
}

func newOAuthService(cfg *config.GoogleOAuthConfig, endpoint oauth2.Endpoint, validate idTokenValidator, logger *slog.Logger) *OAuthService {
	return &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       strings.Fields(cfg.Scopes),
			Endpoint:     endpoint,
		},
		states:   newStateStore(cfg.StateTTL),
		validate: validate,
		logger:   logger,
	}
}

// NewState issues a single-use state value for CSRF protection.
func (s *OAuthService) NewState() (string, error) {
	return s.states.issue()
}

// ValidateState consumes a state value issued by NewState.
func (s *OAuthService) ValidateState(state string) bool {
	return s.states.consume(state)
}

// AuthCodeURL constructs the Google consent URL for state.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for tokens and verifies the returned ID token.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	if code == "" {
		return nil, errors.New("missing authorization code")
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response has no id_token")
	}

	payload, err := s.validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		Name:          stringClaim(payload.Claims, "name"),
		AvatarURL:     stringClaim(payload.Claims, "picture"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Provider:      entity.ProviderTypeGoogle,
	}
	if user.ID == "" || user.Email == "" {
		return nil, errors.New("id token is missing subject or email")
	}

	s.logger.Debug("Google ID token verified", slog.String("userID", user.ID))

	return user, nil
}

// Provider returns the OAuth provider type
func (s *OAuthService) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// boolClaim accepts both JSON booleans and the "true" string some issuers send.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
