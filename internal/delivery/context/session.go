package context

import (
	"prepai/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key holding the authenticated *entity.Session.
const KeySession ContextKey = "session"

// SetSession stores the resolved session for downstream handlers.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session stored by the auth middleware, if any.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)
	if !ok || session == nil || session.User == nil {
		return nil, false
	}

	return session, true
}
