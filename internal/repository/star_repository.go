package repository

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/joypop/joypop-api/internal/cache"
	"github.com/joypop/joypop-api/internal/model"
	"github.com/joypop/joypop-api/internal/ratelimit"
)

// StarStore is the slice of the remote store the star repository uses.
type StarStore interface {
	StarsByUser(ctx context.Context, userID string) ([]model.StarEntry, error)
	StarsByType(ctx context.Context, userID string, t model.StarType) ([]model.StarEntry, error)
	CountStars(ctx context.Context, userID string) (int, error)
	CountStarsByType(ctx context.Context, userID string, t model.StarType) (int, error)
	InsertStar(ctx context.Context, userID string, t model.StarType, content string) (model.StarEntry, error)
	DeleteStar(ctx context.Context, userID, starID string) error
	DeleteAllStars(ctx context.Context, userID string) error
}

// Limiter is what the star repository needs from the rate limiter.
type Limiter interface {
	Check(ctx context.Context, userID string) ratelimit.Result
	Record(ctx context.Context, userID string)
}

// StarRepo is the sole read/write path for star entries. Reads go through
// the cache; every mutation runs a full invalidation sweep over the
// star-derived cache entries before returning, so a caller can never read
// its own write stale.
type StarRepo struct {
	store   StarStore
	cache   *cache.Cache
	limiter Limiter
	log     zerolog.Logger
}

func NewStarRepo(store StarStore, c *cache.Cache, limiter Limiter, log zerolog.Logger) *StarRepo {
	return &StarRepo{store: store, cache: c, limiter: limiter, log: log}
}

// UserStars returns all of the user's stars, newest first.
func (r *StarRepo) UserStars(ctx context.Context, userID string) ([]model.StarEntry, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	key := cache.UserStarsKey(userID)
	if v, ok := r.cache.Get(key); ok {
		if stars, ok := v.([]model.StarEntry); ok {
			return stars, nil
		}
	}
	stars, err := r.store.StarsByUser(ctx, userID)
	if err != nil {
		return nil, wrap("fetch stars", err)
	}
	r.cache.Set(key, stars, cache.TTLStars)
	return stars, nil
}

// StarsByType returns the user's stars of one type, newest first.
func (r *StarRepo) StarsByType(ctx context.Context, userID string, t model.StarType) ([]model.StarEntry, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	key := cache.StarsByTypeKey(t, userID)
	if v, ok := r.cache.Get(key); ok {
		if stars, ok := v.([]model.StarEntry); ok {
			return stars, nil
		}
	}
	stars, err := r.store.StarsByType(ctx, userID, t)
	if err != nil {
		return nil, wrap("fetch stars by type", err)
	}
	r.cache.Set(key, stars, cache.TTLStars)
	return stars, nil
}

// Create makes one star entry: auth check, rate-limit check, remote
// insert, best-effort rate-limit record, cache sweep — in that order.
// Content is trimmed; empty content is a valid entry (the act of engaging
// with the practice is what's recorded, not the text).
func (r *StarRepo) Create(ctx context.Context, userID string, t model.StarType, content string) (model.StarEntry, error) {
	if userID == "" {
		return model.StarEntry{}, ErrUnauthenticated
	}

	res := r.limiter.Check(ctx, userID)
	if !res.Allowed {
		return model.StarEntry{}, &RateLimitError{
			Message:   res.Message,
			Remaining: res.Remaining,
			ResetTime: res.ResetTime,
		}
	}

	content = strings.TrimSpace(content)
	if len(content) > model.MaxContentLength {
		return model.StarEntry{}, ErrContentTooLong
	}

	star, err := r.store.InsertStar(ctx, userID, t, content)
	if err != nil {
		return model.StarEntry{}, wrap("create star", err)
	}

	r.limiter.Record(ctx, userID)
	r.invalidateStarCaches(userID)
	return star, nil
}

// Delete removes one star by id. Ownership is enforced by the store; no
// rate limit applies to deletion.
func (r *StarRepo) Delete(ctx context.Context, userID, starID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := r.store.DeleteStar(ctx, userID, starID); err != nil {
		return wrap("delete star", err)
	}
	r.invalidateStarCaches(userID)
	return nil
}

// DeleteAll removes every star the user owns. Used when archiving a jar.
func (r *StarRepo) DeleteAll(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := r.store.DeleteAllStars(ctx, userID); err != nil {
		return wrap("delete all stars", err)
	}
	r.invalidateStarCaches(userID)
	return nil
}

// Count returns the user's total star count, cached independently from the
// full entry list so count-only callers don't pay for a full fetch.
func (r *StarRepo) Count(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, ErrUnauthenticated
	}
	key := cache.StarCountKey(userID)
	if v, ok := r.cache.Get(key); ok {
		if n, ok := v.(int); ok {
			return n, nil
		}
	}
	n, err := r.store.CountStars(ctx, userID)
	if err != nil {
		return 0, wrap("count stars", err)
	}
	r.cache.Set(key, n, cache.TTLStars)
	return n, nil
}

// CountByType is Count filtered to one star type.
func (r *StarRepo) CountByType(ctx context.Context, userID string, t model.StarType) (int, error) {
	if userID == "" {
		return 0, ErrUnauthenticated
	}
	key := cache.StarCountByTypeKey(t, userID)
	if v, ok := r.cache.Get(key); ok {
		if n, ok := v.(int); ok {
			return n, nil
		}
	}
	n, err := r.store.CountStarsByType(ctx, userID, t)
	if err != nil {
		return 0, wrap("count stars by type", err)
	}
	r.cache.Set(key, n, cache.TTLStars)
	return n, nil
}

// Remaining reports how many stars the user may still create in the
// current window. Count-only view over the limiter.
func (r *StarRepo) Remaining(ctx context.Context, userID string) int {
	return r.limiter.Check(ctx, userID).Remaining
}

// invalidateStarCaches drops every star-derived entry: a new or removed
// star changes all aggregate views at once.
func (r *StarRepo) invalidateStarCaches(userID string) {
	r.cache.Invalidate(cache.UserStarsKey(userID))
	r.cache.Invalidate(cache.StarCountKey(userID))
	r.cache.InvalidatePattern(cache.StarsByTypePattern)
	r.cache.InvalidatePattern(cache.StarCountByTypePattern)
}
