// Package prefs stores per-user UI preferences: the jar skin and the
// savouring timer length. Preferences are cosmetic, so they live in Redis
// as one JSON blob per user with no TTL; a missing blob means defaults.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultTimerSeconds is the savouring timer length for new users.
const DefaultTimerSeconds = 30

// Preferences are the user-adjustable knobs.
type Preferences struct {
	JarSkin            string `json:"jar_skin"`
	SavouringTimerSecs int    `json:"savouring_timer_seconds"`
}

// Default returns the preferences a user starts with.
func Default() Preferences {
	return Preferences{JarSkin: "default", SavouringTimerSecs: DefaultTimerSeconds}
}

// ErrInvalidPreferences is returned when a submitted preference value is
// out of range or references an unknown skin.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Validate checks skin id and timer bounds (5s to 5min).
func (p Preferences) Validate() error {
	if !ValidSkin(p.JarSkin) {
		return fmt.Errorf("%w: unknown jar skin %q", ErrInvalidPreferences, p.JarSkin)
	}
	if p.SavouringTimerSecs < 5 || p.SavouringTimerSecs > 300 {
		return fmt.Errorf("%w: timer must be between 5 and 300 seconds", ErrInvalidPreferences)
	}
	return nil
}

// RedisStore persists preferences keyed by user id.
type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func prefsKey(userID string) string { return "prefs:" + userID }

// Get returns the stored preferences, or defaults when none exist.
func (s *RedisStore) Get(ctx context.Context, userID string) (Preferences, error) {
	raw, err := s.rdb.Get(ctx, prefsKey(userID)).Bytes()
	if err == redis.Nil {
		return Default(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt blob: fall back to defaults rather than locking the
		// user out of settings.
		return Default(), nil
	}
	return p, nil
}

// Set validates and stores preferences.
func (s *RedisStore) Set(ctx context.Context, userID string, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, prefsKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("store preferences: %w", err)
	}
	return nil
}

// Delete removes stored preferences (account deletion).
func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, prefsKey(userID)).Err()
}
