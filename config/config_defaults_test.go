package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsAuthSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.RateLimit)
	require.NotNil(t, cfg.ResetToken)
	require.NotNil(t, cfg.Migration)

	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Positive(t, cfg.Auth.HashWorkers)
	assert.Equal(t, uint32(64*1024), cfg.Auth.Argon2.Memory)

	assert.Equal(t, 5, cfg.RateLimit.Ceiling)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Window)

	assert.Equal(t, time.Hour, cfg.ResetToken.TTL)
	assert.Equal(t, 32, cfg.ResetToken.Length)
	assert.Equal(t, ResetTokenStorePostgres, cfg.ResetToken.Store)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		RateLimit:  &RateLimitConfig{Ceiling: 10, Window: time.Minute * 5, CacheSize: 10},
		ResetToken: &ResetTokenConfig{TTL: 30 * time.Minute, Length: 48, Store: ResetTokenStoreRedis},
		Auth:       &AuthConfig{HashWorkers: 2, Argon2: Argon2Config{Memory: 1024, Iterations: 1}},
	}

	applyDefaults(cfg)

	assert.Equal(t, 10, cfg.RateLimit.Ceiling)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 10, cfg.RateLimit.CacheSize)
	assert.Equal(t, 30*time.Minute, cfg.ResetToken.TTL)
	assert.Equal(t, 48, cfg.ResetToken.Length)
	assert.Equal(t, ResetTokenStoreRedis, cfg.ResetToken.Store)
	assert.Equal(t, 2, cfg.Auth.HashWorkers)
	assert.Equal(t, uint32(1024), cfg.Auth.Argon2.Memory)
	assert.Equal(t, uint32(1), cfg.Auth.Argon2.Iterations)
	assert.Equal(t, uint8(4), cfg.Auth.Argon2.Parallelism)
}
