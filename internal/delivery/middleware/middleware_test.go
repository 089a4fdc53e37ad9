package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prepai/config"
	deliverycontext "prepai/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := map[string]struct {
		header   string
		wantSame bool
	}{
		"reuses client id":      {header: "abc-123", wantSame: true},
		"generates when absent": {header: ""},
		"rejects control chars": {header: "abc\x01"},
		"rejects oversized":     {header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

			var seenID, ctxID string
			var hasLogger bool
			e.GET("/", func(c echo.Context) error {
				seenID = deliverycontext.RequestID(c)
				ctxID = deliverycontext.RequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil) != nil

				return c.NoContent(http.StatusOK)
			}, mw.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seenID)
			assert.Equal(t, seenID, ctxID)
			assert.True(t, hasLogger)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tc.wantSame {
				assert.Equal(t, tc.header, seenID)
			} else {
				assert.NotEqual(t, tc.header, seenID)
			}
		})
	}
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Handle)
	e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) }, mw.Handle)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Contains(t, buf.String(), `"uri":"/fail"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
