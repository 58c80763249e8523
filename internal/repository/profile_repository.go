package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/joypop/joypop-api/internal/cache"
	"github.com/joypop/joypop-api/internal/model"
	"github.com/joypop/joypop-api/internal/store"
)

// ProfileStore is the slice of the remote store the profile repository uses.
type ProfileStore interface {
	ProfileByID(ctx context.Context, userID string) (model.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// SessionRevoker terminates every local session for a user. Satisfied by
// auth.Sessions.
type SessionRevoker interface {
	RevokeAll(ctx context.Context, userID string) error
}

// ProfileRepo serves cached profile reads and the account-deletion flow.
type ProfileRepo struct {
	store    ProfileStore
	cache    *cache.Cache
	sessions SessionRevoker
	log      zerolog.Logger
}

func NewProfileRepo(s ProfileStore, c *cache.Cache, sessions SessionRevoker, log zerolog.Logger) *ProfileRepo {
	return &ProfileRepo{store: s, cache: c, sessions: sessions, log: log}
}

// Profile returns the user's profile, or nil without error when no
// principal is available or no profile row exists.
func (r *ProfileRepo) Profile(ctx context.Context, userID string) (*model.Profile, error) {
	if userID == "" {
		return nil, nil
	}
	key := cache.ProfileKey(userID)
	if v, ok := r.cache.Get(key); ok {
		if p, ok := v.(model.Profile); ok {
			return &p, nil
		}
	}
	p, err := r.store.ProfileByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("fetch profile", err)
	}
	r.cache.Set(key, p, cache.TTLProfile)
	return &p, nil
}

// DeleteAccount removes all of the user's data server-side, then purges
// every local cache entry and revokes every session. If the server-side
// deletion fails, nothing local is touched — the account is assumed to
// still exist.
func (r *ProfileRepo) DeleteAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := r.store.DeleteAccount(ctx, userID); err != nil {
		return wrap("delete account", err)
	}

	// Full wipe, not just this user's keys: the principal is gone.
	r.cache.Clear()
	if err := r.sessions.RevokeAll(ctx, userID); err != nil {
		// The remote data is already gone; a leftover session row only
		// dangles until expiry.
		r.log.Warn().Err(err).Str("user_id", userID).Msg("revoke sessions after account deletion failed")
	}
	return nil
}
