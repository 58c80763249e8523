package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_STARS_PER_DAY", "")
	t.Setenv("RATE_LIMIT_WINDOW_HOURS", "")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 10, cfg.Quota)
	assert.Equal(t, 24*time.Hour, cfg.Window)
}

func TestLoadRateLimitConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_STARS_PER_DAY", "5")
	t.Setenv("RATE_LIMIT_WINDOW_HOURS", "12")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 5, cfg.Quota)
	assert.Equal(t, 12*time.Hour, cfg.Window)
}

func TestLoadRateLimitConfigFloors(t *testing.T) {
	t.Setenv("RATE_LIMIT_STARS_PER_DAY", "0")
	t.Setenv("RATE_LIMIT_WINDOW_HOURS", "0")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Quota)
	assert.Equal(t, 24*time.Hour, cfg.Window)
}
