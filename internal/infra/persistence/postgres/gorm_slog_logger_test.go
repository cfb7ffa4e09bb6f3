package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		want    string
		notWant string
	}{
		{name: "failure is an error", err: errors.New("connection reset"), want: `"level":"ERROR"`},
		{name: "duplicate key is expected", err: gorm.ErrDuplicatedKey, want: `"msg":"Query rejected"`, notWant: `"level":"ERROR"`},
		{name: "missing row is expected", err: gorm.ErrRecordNotFound, want: `"level":"DEBUG"`, notWant: `"level":"ERROR"`},
		{name: "slow query warns", elapsed: time.Second, want: `"msg":"Slow query"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			assert.Contains(t, buf.String(), tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	reqLogger := newBufferLogger(&scoped).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-42"`)
}

func TestGormSlogLogger_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	l.Info(context.Background(), "hello %s", "world")

	assert.Empty(t, buf.String())
}
