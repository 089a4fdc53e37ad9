package middleware

import (
	"strings"

	"prepai/config"
	deliverycontext "prepai/internal/delivery/context"
	"prepai/internal/domain/entity"
	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/errors"
	"prepai/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the session token into a session on protected routes.
type AuthMiddleware struct {
	userUC     usecase.UserUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		userUC:     userUC,
		cookieName: cfg.Session.CookieName,
	}
}

// TokenFromRequest reads the session token from the session cookie, falling back to a Bearer header.
func (m *AuthMiddleware) TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// Authenticate rejects requests without a valid session and stores the session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.TokenFromRequest(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		session, err := m.userUC.GetSession(c.Request().Context(), token)
		if err != nil {
			return errors.Wrap(err, "authenticate")
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if session.User.Role != role.String() {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
