package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"prepai/config"
	"prepai/internal/domain/entity"
	"prepai/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func testConfig() *config.GoogleOAuthConfig {
	return &config.GoogleOAuthConfig{
		Enabled:      true,
		ClientID:     "test_client_id",
		ClientSecret: "test_secret",
		RedirectURI:  "http://localhost:8080/api/auth/callback/google",
		Scopes:       "openid email profile",
		StateTTL:     time.Minute,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTokenServer(t *testing.T, idToken string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "good-code", r.Form.Get("code"))

		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	svc := newOAuthService(testConfig(), oauth2.Endpoint{AuthURL: "https://accounts.google.com/o/oauth2/auth"}, nil, discardLogger())

	raw := svc.AuthCodeURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/api/auth/callback/google", query.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "state-123", query.Get("state"))
}

func TestOAuthService_StateIsSingleUse(t *testing.T) {
	svc := newOAuthService(testConfig(), oauth2.Endpoint{}, nil, discardLogger())

	state, err := svc.NewState()
	require.NoError(t, err)
	assert.Len(t, state, 64)

	assert.True(t, svc.ValidateState(state))
	assert.False(t, svc.ValidateState(state), "state must not be accepted twice")
	assert.False(t, svc.ValidateState("unknown"))
}

func TestOAuthService_StateExpires(t *testing.T) {
	svc := newOAuthService(testConfig(), oauth2.Endpoint{}, nil, discardLogger())
	now := time.Now()
	svc.states.now = func() time.Time { return now }

	state, err := svc.NewState()
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	assert.False(t, svc.ValidateState(state))
}

func TestOAuthService_Exchange(t *testing.T) {
	srv := newTokenServer(t, "raw-id-token")
	validate := func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-id-token", idToken)
		assert.Equal(t, "test_client_id", audience)

		return &idtoken.Payload{
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "ada@example.com",
				"email_verified": true,
				"name":           "Ada",
				"picture":        "https://img/ada",
			},
		}, nil
	}
	svc := newOAuthService(testConfig(), oauth2.Endpoint{TokenURL: srv.URL}, validate, discardLogger())

	user, err := svc.Exchange(context.Background(), "good-code")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "https://img/ada", user.AvatarURL)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
}

func TestOAuthService_Exchange_RejectsInvalidIDToken(t *testing.T) {
	srv := newTokenServer(t, "forged")
	validate := func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: invalid signature")
	}
	svc := newOAuthService(testConfig(), oauth2.Endpoint{TokenURL: srv.URL}, validate, discardLogger())

	user, err := svc.Exchange(context.Background(), "good-code")

	assert.Nil(t, user)
	assert.Error(t, err)
}

func TestOAuthService_Exchange_MissingCode(t *testing.T) {
	svc := newOAuthService(testConfig(), oauth2.Endpoint{}, nil, discardLogger())

	_, err := svc.Exchange(context.Background(), "")

	assert.Error(t, err)
}

func TestNewOAuthService_Disabled(t *testing.T) {
	assert.Nil(t, NewOAuthService(&config.Config{}, discardLogger()))
	assert.Nil(t, NewOAuthService(&config.Config{GoogleOAuth: &config.GoogleOAuthConfig{}}, discardLogger()))
	assert.NotNil(t, NewOAuthService(&config.Config{GoogleOAuth: testConfig()}, discardLogger()))
}
