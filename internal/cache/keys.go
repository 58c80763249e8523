package cache

import (
	"time"

	"github.com/joypop/joypop-api/internal/model"
)

// TTLs per data family. Stars change often, jars and profiles rarely.
const (
	TTLStars   = 30 * time.Second
	TTLJars    = 5 * time.Minute
	TTLProfile = 10 * time.Minute
)

// Key builders. Keys are scoped per user so one shared cache instance can
// serve all authenticated principals. The per-type families keep a stable
// prefix so a single InvalidatePattern call covers the whole closed set of
// star types.
func UserStarsKey(userID string) string { return "user_stars:" + userID }
func StarCountKey(userID string) string { return "star_count:" + userID }
func JarsKey(userID string) string      { return "jars:" + userID }
func ProfileKey(userID string) string   { return "profile:" + userID }

func StarsByTypeKey(t model.StarType, userID string) string {
	return "stars_by_type_" + string(t) + ":" + userID
}

func StarCountByTypeKey(t model.StarType, userID string) string {
	return "star_count_by_type_" + string(t) + ":" + userID
}

// Prefixes matched by InvalidatePattern when a mutation must drop every
// per-type entry at once.
const (
	StarsByTypePattern     = "stars_by_type"
	StarCountByTypePattern = "star_count_by_type"
)
