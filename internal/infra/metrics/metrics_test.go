package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRouteAndStatus(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/api/problems/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return errors.Wrap(domainerrors.ErrNotFound, "lookup")
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/api/problems/a", "/api/problems/b", "/api/problems/missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/problems/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/problems/:id", "404")), 0)
}

func TestAuthCounters(t *testing.T) {
	m := New()

	m.ObserveSignUp(OutcomeSuccess)
	m.ObserveSignUp(OutcomeRejected)
	m.ObserveSignUp(OutcomeRejected)
	m.ObserveSignIn("google", OutcomeSuccess)

	assert.InDelta(t, 2, testutil.ToFloat64(m.signUps.WithLabelValues(OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.signIns.WithLabelValues("google", OutcomeSuccess)), 0)
}

func TestHandler_ServesExposition(t *testing.T) {
	m := New()
	m.ObserveSignIn("credentials", OutcomeRejected)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `prepai_auth_signins_total{outcome="rejected",provider="credentials"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusFromError(domainerrors.ErrUserAlreadyExists))
	assert.Equal(t, http.StatusMethodNotAllowed, statusFromError(echo.NewHTTPError(http.StatusMethodNotAllowed)))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom")))
}
