// Package insights derives per-category statistics from a star list:
// day streaks and hashtag tallies. Pure functions over data the star
// repository already provides.
package insights

import (
	"regexp"
	"sort"
	"time"

	"github.com/joypop/joypop-api/internal/model"
)

var hashtagRe = regexp.MustCompile(`#\w+`)

// Hashtags returns every #token embedded in content, in order of
// appearance. Content is free-form; tags are a display convention, not a
// stored field.
func Hashtags(content string) []string {
	return hashtagRe.FindAllString(content, -1)
}

// TagCount pairs a hashtag with how often it appeared.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopHashtags tallies hashtags across all entries and returns the most
// frequent ones, at most limit. Ties break alphabetically for stable
// output.
func TopHashtags(stars []model.StarEntry, limit int) []TagCount {
	counts := map[string]int{}
	for _, s := range stars {
		for _, tag := range Hashtags(s.Content) {
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Streak counts consecutive calendar days with at least one entry, ending
// today (relative to now). A day without entries breaks the streak; an
// entry today is not required to count past days, only day zero is.
func Streak(stars []model.StarEntry, now time.Time) int {
	if len(stars) == 0 {
		return 0
	}

	days := map[string]bool{}
	for _, s := range stars {
		days[dayKey(s.CreatedAt.In(now.Location()))] = true
	}

	streak := 0
	for d := now; days[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
