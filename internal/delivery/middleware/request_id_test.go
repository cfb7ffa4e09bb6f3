package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "quill/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "generates an id"},
		{name: "keeps the client id", incoming: "client-supplied.01", wantKept: true},
		{name: "replaces an id with unsafe characters", incoming: "abc\" injected=1"},
		{name: "replaces an overlong id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var fromEcho, fromCtx string
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.RequestID(c)
				fromCtx = deliverycontext.RequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			}, mw.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, fromEcho, fromCtx)
			assert.Equal(t, fromEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.wantKept {
				assert.Equal(t, tt.incoming, fromEcho)
			} else {
				_, err := uuid.Parse(fromEcho)
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestIDMiddleware_BindsScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		deliverycontext.LoggerFrom(c.Request().Context(), nil).Info("inside handler")

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	e.ServeHTTP(httptest.NewRecorder(), req)

	require.Contains(t, buf.String(), "inside handler")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}
