package config

import "time"

// RateLimitConfig controls the star-creation quota: at most Quota
// creations per rolling Window.
type RateLimitConfig struct {
	Quota  int
	Window time.Duration
}

// LoadRateLimitConfig reads the quota settings with product defaults of
// 10 stars per trailing 24 hours.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Quota:  envInt("RATE_LIMIT_STARS_PER_DAY", 10),
		Window: time.Duration(envInt("RATE_LIMIT_WINDOW_HOURS", 24)) * time.Hour,
	}
	if cfg.Quota < 1 {
		cfg.Quota = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	return cfg
}
