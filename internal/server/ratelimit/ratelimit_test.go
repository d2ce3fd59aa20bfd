package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no cleanup goroutine in tests
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func TestLimiter_BurstExhaustion(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// /score/bulk allows a burst of 2
	allowed, _ := limiter.Allow("client-1", "/score/bulk", "POST")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-1", "/score/bulk", "POST")
	assert.True(t, allowed)

	allowed, info := limiter.Allow("client-1", "/score/bulk", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("client-a", "/score/bulk", "POST")
		assert.True(t, allowed)
	}
	allowed, _ := limiter.Allow("client-a", "/score/bulk", "POST")
	assert.False(t, allowed)

	// A different client still has a full bucket
	allowed, _ = limiter.Allow("client-b", "/score/bulk", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("client-1", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-1", "/score/bulk", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["trusted"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("trusted", "/score/bulk", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["banned"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("banned", "/runs", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/score/bulk", "POST", configs)
	assert.NotNil(t, match)
	assert.Equal(t, 10, match.Limit)

	// Prefix matching covers path parameters
	match = MatchEndpoint("/runs/0b1c9f4e", "DELETE", configs)
	assert.NotNil(t, match)
	assert.Equal(t, 100, match.Limit)

	// Reads fall through to the default
	assert.Nil(t, MatchEndpoint("/runs", "GET", configs))

	// Health check is unlimited
	match = MatchEndpoint("/health", "GET", configs)
	assert.NotNil(t, match)
	assert.Equal(t, 0, match.Limit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Whitelist(t *testing.T) {
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()

	assert.True(t, cfg.Whitelist["10.0.0.1"])
	assert.True(t, cfg.Whitelist["10.0.0.2"])
	assert.False(t, cfg.Whitelist["10.0.0.3"])
}
