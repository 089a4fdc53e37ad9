package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"prepai/config"
	"prepai/internal/delivery/http/middleware"
	"prepai/internal/delivery/http/validator"
	"prepai/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Session:     &config.SessionConfig{CookieName: "next-auth.session-token", TTL: time.Hour},
		GoogleOAuth: &config.GoogleOAuthConfig{StateTTL: 10 * time.Minute},
		Auth: &config.AuthConfig{Pages: &config.PageConfig{
			SignIn:      "/auth/signin",
			SignUp:      "/auth/signup",
			Error:       "/auth/error",
			AfterSignIn: "/dashboard",
		}},
	}

	return cfg
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, fn := range mutate {
		fn(req)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func withCookie(name, value string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func errorQuery(t *testing.T, location string) string {
	t.Helper()

	u, err := url.Parse(location)
	require.NoError(t, err)

	return u.Query().Get("error")
}

func newMetrics() *metrics.Metrics {
	return metrics.New()
}
