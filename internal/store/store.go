// Package store defines the boundary toward the remote authoritative data
// store and its MySQL implementation. Every operation is scoped to one
// user id; the store assigns ids and timestamps. Repositories depend on
// narrow slices of this interface, handlers never touch it directly.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/joypop/joypop-api/internal/model"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("store: not found")

// Store is the full capability surface the application needs from the
// remote store.
type Store interface {
	// Stars. Lists are ordered newest first. InsertStar encrypts content
	// at rest and returns the decrypted view of the new row with its
	// server-assigned id and timestamp.
	StarsByUser(ctx context.Context, userID string) ([]model.StarEntry, error)
	StarsByType(ctx context.Context, userID string, t model.StarType) ([]model.StarEntry, error)
	CountStars(ctx context.Context, userID string) (int, error)
	CountStarsByType(ctx context.Context, userID string, t model.StarType) (int, error)
	InsertStar(ctx context.Context, userID string, t model.StarType, content string) (model.StarEntry, error)
	DeleteStar(ctx context.Context, userID, starID string) error
	DeleteAllStars(ctx context.Context, userID string) error

	// Jars, newest first.
	InsertJar(ctx context.Context, userID, name string) (model.Jar, error)
	JarsByUser(ctx context.Context, userID string) ([]model.Jar, error)

	// Profiles and account lifecycle. EnsureProfile provisions a profile
	// on first login. DeleteAccount removes profile, stars, jars and
	// rate-limit records in one transaction.
	ProfileByID(ctx context.Context, userID string) (model.Profile, error)
	ProfileByEmail(ctx context.Context, email string) (model.Profile, error)
	EnsureProfile(ctx context.Context, email string) (model.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error

	// Rate-limit write log: append-only timestamped markers aggregated by
	// count and oldest-in-window only.
	InsertRateLimitRecord(ctx context.Context, userID string) error
	CountRateLimitRecords(ctx context.Context, userID string, since time.Time) (int, error)
	OldestRateLimitRecord(ctx context.Context, userID string, since time.Time) (time.Time, error)
}
