package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joypop/joypop-api/internal/model"
)

func TestHashtags(t *testing.T) {
	assert.Equal(t, []string{"#morning", "#calm"}, Hashtags("coffee #morning walk #calm"))
	assert.Empty(t, Hashtags("no tags here"))
	assert.Empty(t, Hashtags(""))
}

func TestTopHashtags(t *testing.T) {
	stars := []model.StarEntry{
		{Content: "#walk #sun"},
		{Content: "#walk again"},
		{Content: "#walk and #sun and #rain"},
		{Content: "#rain"},
	}

	top := TopHashtags(stars, 3)
	assert.Equal(t, []TagCount{
		{Tag: "#walk", Count: 3},
		{Tag: "#rain", Count: 2},
		{Tag: "#sun", Count: 2},
	}, top)
}

func TestTopHashtags_Limit(t *testing.T) {
	stars := []model.StarEntry{{Content: "#a #b #c #d"}}
	assert.Len(t, TopHashtags(stars, 3), 3)
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	stars := []model.StarEntry{
		{CreatedAt: now.Add(-2 * time.Hour)},             // today
		{CreatedAt: now.AddDate(0, 0, -1)},               // yesterday
		{CreatedAt: now.AddDate(0, 0, -2).Add(time.Hour)}, // two days ago
		{CreatedAt: now.AddDate(0, 0, -5)},               // gap breaks here
	}
	assert.Equal(t, 3, Streak(stars, now))
}

func TestStreak_NoEntryTodayIsZero(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	stars := []model.StarEntry{{CreatedAt: now.AddDate(0, 0, -1)}}
	assert.Equal(t, 0, Streak(stars, now))
}

func TestStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, time.Now()))
}

func TestStreak_MultipleEntriesSameDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	stars := []model.StarEntry{
		{CreatedAt: now.Add(-1 * time.Hour)},
		{CreatedAt: now.Add(-2 * time.Hour)},
	}
	assert.Equal(t, 1, Streak(stars, now))
}
