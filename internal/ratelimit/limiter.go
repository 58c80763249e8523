// Package ratelimit gates star creation to a fixed quota per rolling
// window, reconstructed on every check from the append-only write log in
// the remote store. The limit is a soft cost cap, not a security boundary:
// accounting faults must never block the primary feature, so the check
// fails open on count errors and record failures are swallowed.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Defaults: 10 stars per trailing 24 hours.
const (
	DefaultQuota  = 10
	DefaultWindow = 24 * time.Hour
)

// RecordStore is the slice of the remote store the limiter needs.
type RecordStore interface {
	InsertRateLimitRecord(ctx context.Context, userID string) error
	CountRateLimitRecords(ctx context.Context, userID string, since time.Time) (int, error)
	OldestRateLimitRecord(ctx context.Context, userID string, since time.Time) (time.Time, error)
}

// Result reports whether one more star may be created right now.
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime *time.Time
	Message   string
}

// Limiter computes the rolling-window quota for one principal at a time.
type Limiter struct {
	store  RecordStore
	quota  int
	window time.Duration
	log    zerolog.Logger
	now    func() time.Time // injectable for tests
}

func New(store RecordStore, quota int, window time.Duration, log zerolog.Logger) *Limiter {
	if quota <= 0 {
		quota = DefaultQuota
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{store: store, quota: quota, window: window, log: log, now: time.Now}
}

// Quota returns the configured cap.
func (l *Limiter) Quota() int { return l.quota }

// Check recomputes the window from "now" on every call; there is no
// calendar-day reset. It never returns an error: no principal fails
// closed, a failing count query fails open.
func (l *Limiter) Check(ctx context.Context, userID string) Result {
	if userID == "" {
		return Result{Allowed: false, Remaining: 0, Message: "user not authenticated"}
	}

	windowStart := l.now().Add(-l.window)
	count, err := l.store.CountRateLimitRecords(ctx, userID, windowStart)
	if err != nil {
		l.log.Warn().Err(err).Str("user_id", userID).Msg("rate limit count failed, allowing")
		return Result{Allowed: true, Remaining: l.quota}
	}

	if count >= l.quota {
		var reset *time.Time
		if oldest, err := l.store.OldestRateLimitRecord(ctx, userID, windowStart); err == nil {
			t := oldest.Add(l.window)
			reset = &t
		}
		return Result{
			Allowed:   false,
			Remaining: 0,
			ResetTime: reset,
			Message:   l.limitMessage(),
		}
	}

	return Result{Allowed: true, Remaining: l.quota - count}
}

// Record appends one marker for a star that was already created. A failure
// here must never undo the creation, so errors are logged and dropped; the
// limiter under-counts rather than corrupting the flow.
func (l *Limiter) Record(ctx context.Context, userID string) {
	if err := l.store.InsertRateLimitRecord(ctx, userID); err != nil {
		l.log.Warn().Err(err).Str("user_id", userID).Msg("rate limit record failed")
	}
}

func (l *Limiter) limitMessage() string {
	return fmt.Sprintf(`Whoa there, star collector!

You've reached your daily limit of %d stars.

Good habits grow best when practiced over multiple days, not all at once. Take a short break and come back tomorrow to keep adding sparkle!`, l.quota)
}

// ShortMessage is a compact remaining-count line for inline UI use.
func ShortMessage(remaining int) string {
	switch {
	case remaining == 0:
		return "Daily limit reached! Come back later for more stars."
	case remaining == 1:
		return "Only 1 star left today!"
	case remaining <= 3:
		return fmt.Sprintf("Only %d stars left today!", remaining)
	default:
		return fmt.Sprintf("%d stars remaining today", remaining)
	}
}
