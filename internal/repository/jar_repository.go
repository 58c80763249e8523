package repository

import (
	"context"
	"strings"

	"github.com/joypop/joypop-api/internal/cache"
	"github.com/joypop/joypop-api/internal/model"
)

// JarStore is the slice of the remote store the jar repository uses.
type JarStore interface {
	InsertJar(ctx context.Context, userID, name string) (model.Jar, error)
	JarsByUser(ctx context.Context, userID string) ([]model.Jar, error)
}

// JarRepo reads and writes archived jars. Jars change rarely, so their
// cache entry lives longer than the star family's.
type JarRepo struct {
	store JarStore
	cache *cache.Cache
}

func NewJarRepo(store JarStore, c *cache.Cache) *JarRepo {
	return &JarRepo{store: store, cache: c}
}

// Create archives the current jar under a name. The name is trimmed and
// validated loudly — never silently truncated.
func (r *JarRepo) Create(ctx context.Context, userID, name string) (model.Jar, error) {
	if userID == "" {
		return model.Jar{}, ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Jar{}, ErrEmptyJarName
	}
	if len(name) > model.MaxJarNameLength {
		return model.Jar{}, ErrJarNameTooLong
	}

	jar, err := r.store.InsertJar(ctx, userID, name)
	if err != nil {
		return model.Jar{}, wrap("create jar", err)
	}
	r.cache.Invalidate(cache.JarsKey(userID))
	return jar, nil
}

// Jars returns the user's archived jars, newest first.
func (r *JarRepo) Jars(ctx context.Context, userID string) ([]model.Jar, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	key := cache.JarsKey(userID)
	if v, ok := r.cache.Get(key); ok {
		if jars, ok := v.([]model.Jar); ok {
			return jars, nil
		}
	}
	jars, err := r.store.JarsByUser(ctx, userID)
	if err != nil {
		return nil, wrap("fetch jars", err)
	}
	r.cache.Set(key, jars, cache.TTLJars)
	return jars, nil
}
