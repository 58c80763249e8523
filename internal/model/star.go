package model

import "time"

// StarType identifies which wellbeing practice a star entry records.
type StarType string

const (
	StarSavouring StarType = "savouring"
	StarKindness  StarType = "kindness"
	StarGratitude StarType = "gratitude"
)

// StarTypes returns the closed set of star types in display order.
func StarTypes() []StarType {
	return []StarType{StarSavouring, StarKindness, StarGratitude}
}

// ParseStarType validates a raw string against the known star types.
func ParseStarType(s string) (StarType, bool) {
	switch StarType(s) {
	case StarSavouring, StarKindness, StarGratitude:
		return StarType(s), true
	}
	return "", false
}

// MaxContentLength bounds the free-text content of a star entry. Content
// may be empty and may embed #hashtag tokens; it is stored verbatim.
const MaxContentLength = 200

// StarEntry mirrors the 'stars' table. A nil JarID means the star belongs
// to the user's current, unarchived jar. Entries are immutable except for
// deletion.
type StarEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      StarType  `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	JarID     *string   `json:"jar_id,omitempty"`
}
