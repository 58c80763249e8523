package jarfill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joypop/joypop-api/internal/model"
)

func stars(n int) []model.StarEntry {
	out := make([]model.StarEntry, n)
	for i := range out {
		out[i] = model.StarEntry{ID: string(rune('a' + i%26))}
	}
	return out
}

func TestFill_Counts(t *testing.T) {
	s := Fill(stars(3))
	assert.Equal(t, 3, s.Filled)
	assert.Equal(t, 57, s.Empty)
	assert.Equal(t, 60, s.Capacity)
	assert.False(t, s.Full())
}

func TestFill_ClampsAtCapacity(t *testing.T) {
	s := Fill(stars(65))
	assert.Equal(t, 60, s.Filled)
	assert.Equal(t, 0, s.Empty)
	assert.True(t, s.Full())
}

func TestQuote_Boundaries(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "Your journey to joy begins with a single star"},
		{1, "One star shines bright! Keep going!"},
		{5, "Every star is a step toward happiness!"},     // 8.3%
		{10, "You're building something beautiful!"},      // 16.7%
		{25, "Look at all this joy you're collecting!"},   // 41.7%
		{40, "Your jar is filling with wonderful moments!"}, // 66.7%
		{50, "Almost there! Your joy is overflowing!"},    // 83.3%
		{59, "So close to a full jar of happiness!"},      // 98.3%, not full
		{60, "Your jar is full of beautiful memories!"},
	}
	for _, tc := range cases {
		s := Fill(stars(tc.count))
		assert.Equal(t, tc.want, s.Quote(), "count=%d", tc.count)
	}
}

func TestBottomUp_NewestStarTakesTopSlot(t *testing.T) {
	t1 := time.Now().Add(-3 * time.Hour)
	t2 := time.Now().Add(-2 * time.Hour)
	t3 := time.Now().Add(-1 * time.Hour)

	// Newest-first input, as the star repository returns it.
	newestFirst := []model.StarEntry{
		{ID: "s3", CreatedAt: t3},
		{ID: "s2", CreatedAt: t2},
		{ID: "s1", CreatedAt: t1},
	}

	slots := BottomUp(newestFirst, 60)

	// Oldest star sits in the first filled slot (bottom of the jar),
	// newest in the last (nearest the top).
	assert.Equal(t, "s1", slots[0].ID)
	assert.Equal(t, "s2", slots[1].ID)
	assert.Equal(t, "s3", slots[2].ID)
}

func TestBottomUp_TruncatesToCapacity(t *testing.T) {
	slots := BottomUp(stars(70), 60)
	assert.Len(t, slots, 60)
}
