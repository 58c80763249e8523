// Package config loads application configuration from environment
// variables. Required variables halt startup with a fatal log; tunables
// fall back to sensible defaults.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Strings for identifiers
// and secrets, ints for durations, costs and quotas.
type Config struct {
	Env    string // application environment (dev/test/prod)
	Port   string // HTTP port to listen on
	DBUser string
	DBPass string // optional
	DBHost string
	DBPort string
	DBName string

	JWTSecret      string
	AccessTTLMin   int // access token time-to-live in minutes
	RefreshTTLDays int // refresh token time-to-live in days
	BcryptCost     int // bcrypt cost for OTP code hashing
	OTPTTLMin      int // pending OTP code lifetime in minutes

	StarKeyHex string // 32-byte star content encryption key, hex encoded
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   envInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: envInt("REFRESH_TOKEN_TTL_DAYS", 30),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		OTPTTLMin:      envInt("OTP_TTL_MIN", 10),
		StarKeyHex:     must("STAR_ENCRYPTION_KEY"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envInt reads an optional integer variable with a default.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
