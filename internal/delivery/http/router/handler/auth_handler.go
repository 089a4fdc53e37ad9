// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"prepai/config"
	deliverycontext "prepai/internal/delivery/context"
	"prepai/internal/delivery/http/middleware"
	"prepai/internal/delivery/http/response"
	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/errors"
	"prepai/internal/infra/metrics"
	"prepai/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	oauthStateCookie   = "prepai.oauth-state"
	providerGoogle     = "google"
	providerCredential = "credentials"
)

// SignUpRequest is the sign-up form. Content rules are enforced by the use case so every failed rule is reported.
type SignUpRequest struct {
	Name     string `json:"name" form:"name" validate:"max=100"`
	Email    string `json:"email" form:"email" validate:"max=254"`
	Password string `json:"password" form:"password" validate:"max=128"`
}

// CredentialsRequest is posted by the sign-in form.
type CredentialsRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=254"`
	Password string `json:"password" form:"password" validate:"required,max=128"`
}

// AuthHandler serves the sign-up, sign-in and session endpoints.
type AuthHandler struct {
	uc      usecase.UserUsecase
	auth    *middleware.AuthMiddleware
	metrics *metrics.Metrics
	logger  *slog.Logger

	session  *config.SessionConfig
	pages    *config.PageConfig
	stateTTL time.Duration
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUsecase    usecase.UserUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:       params.UserUsecase,
		auth:     params.AuthMiddleware,
		metrics:  params.Metrics,
		logger:   params.Logger,
		session:  params.Config.Session,
		pages:    params.Config.Auth.Pages,
		stateTTL: params.Config.GoogleOAuth.StateTTL,
	}
}

func (h *AuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// SignUp registers a credentials account.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("Invalid sign-up input", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	h.metrics.ObserveSignUp(outcomeOf(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"user": newUserView(output.User)}, "User created successfully")
}

// CredentialsCallback signs in with email and password and sets the session cookie.
func (h *AuthHandler) CredentialsCallback(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("Invalid sign-in input", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignInWithCredentials(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	h.metrics.ObserveSignIn(providerCredential, outcomeOf(err))
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output)

	return response.Success(c, http.StatusOK, map[string]any{"session": output.Session}, "Signed in successfully")
}

// GoogleSignIn starts the authorization code flow. `?redirect=false` returns the URL instead of redirecting.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	start, err := h.uc.BeginExternalSignIn(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    start.State,
		Path:     "/",
		MaxAge:   int(h.stateTTL / time.Second),
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, map[string]string{"url": start.URL}, "Google sign-in URL generated")
	}

	return c.Redirect(http.StatusFound, start.URL)
}

// GoogleCallback completes the flow. Failures redirect to the error page with the error code.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	// The state cookie is single use whatever the outcome.
	h.clearCookie(c, oauthStateCookie)

	if providerErr := c.QueryParam("error"); providerErr != "" {
		h.metrics.ObserveSignIn(providerGoogle, metrics.OutcomeRejected)
		h.log(c).Info("Google sign-in cancelled by provider", slog.String("error", providerErr))

		return h.redirectToError(c, domainerrors.ErrAccessDenied.ErrorCode())
	}

	state := c.QueryParam("state")
	if cookie, err := c.Cookie(oauthStateCookie); err != nil || cookie.Value == "" || cookie.Value != state {
		h.metrics.ObserveSignIn(providerGoogle, metrics.OutcomeRejected)

		return h.redirectToError(c, domainerrors.ErrOAuthStateInvalid.ErrorCode())
	}

	output, err := h.uc.CompleteExternalSignIn(c.Request().Context(), &usecase.CompleteExternalSignInInput{
		Code:  c.QueryParam("code"),
		State: state,
	})
	h.metrics.ObserveSignIn(providerGoogle, outcomeOf(err))
	if err != nil {
		h.log(c).Warn("Google sign-in failed", slog.Any("error", err))

		return h.redirectToError(c, errorCode(err))
	}

	h.setSessionCookie(c, output)

	return c.Redirect(http.StatusFound, h.pages.AfterSignIn)
}

// Session returns the current session, or an empty object when not signed in.
func (h *AuthHandler) Session(c echo.Context) error {
	token := h.auth.TokenFromRequest(c)
	if token == "" {
		return response.Success(c, http.StatusOK, map[string]any{}, "No active session")
	}

	session, err := h.uc.GetSession(c.Request().Context(), token)
	if errors.Is(err, domainerrors.ErrSessionInvalid) {
		h.clearCookie(c, h.session.CookieName)

		return response.Success(c, http.StatusOK, map[string]any{}, "No active session")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Active session")
}

// SignOut clears the session cookie.
func (h *AuthHandler) SignOut(c echo.Context) error {
	h.clearCookie(c, h.session.CookieName)

	return response.Success(c, http.StatusOK, map[string]string{"url": h.pages.SignIn}, "Signed out")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, output *usecase.SignInOutput) {
	c.SetCookie(&http.Cookie{
		Name:     h.session.CookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  output.ExpiresAt,
		MaxAge:   max(int(time.Until(output.ExpiresAt)/time.Second), 1),
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) redirectToError(c echo.Context, code string) error {
	return c.Redirect(http.StatusFound, h.pages.Error+"?"+url.Values{"error": {code}}.Encode())
}

func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return domainerrors.ErrInternalError.ErrorCode()
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return metrics.OutcomeRejected
	}

	return metrics.OutcomeError
}

