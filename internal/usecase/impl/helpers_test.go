package impl

import (
	"io"
	"log/slog"
	"time"

	"quill/config"
)

const (
	testRefreshSecret = "refresh-secret"
	testResetTTL      = time.Hour
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{
			Access:  "access-secret",
			Refresh: testRefreshSecret,
		},
		ResetToken: &config.ResetTokenConfig{
			TTL:    testResetTTL,
			Length: 32,
		},
	}
}
