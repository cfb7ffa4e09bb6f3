package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quill/internal/infra/ratelimit"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_Limit(t *testing.T) {
	limiter := ratelimit.New(5, time.Minute, 100)
	mw := NewRateLimitMiddleware(limiter, newDiscardLogger())

	e := newTestEcho()
	e.POST("/login", okHandler, mw.Limit)

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	for i := range 5 {
		rec := send("198.51.100.1:1000")
		assert.Equal(t, http.StatusNoContent, rec.Code, "request %d", i+1)
	}

	rec := send("198.51.100.1:1001")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Code)

	// Other clients keep their own budget
	assert.Equal(t, http.StatusNoContent, send("198.51.100.2:1000").Code)
}

func TestRateLimitMiddleware_UnidentifiedClient(t *testing.T) {
	mw := NewRateLimitMiddleware(ratelimit.New(5, time.Minute, 100), newDiscardLogger())

	e := newTestEcho()
	e.POST("/forgot-password", okHandler, mw.Limit)

	req := httptest.NewRequest(http.MethodPost, "/forgot-password", nil)
	req.RemoteAddr = "@"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CLIENT_UNIDENTIFIED", decodeError(t, rec).Code)
}
