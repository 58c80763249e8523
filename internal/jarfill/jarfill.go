// Package jarfill contains the pure jar-filling logic: slot accounting,
// the motivational quote ladder and the display ordering of filled slots.
// It only reads star lists; archiving (create jar, delete stars) is driven
// by the caller when Full reports true.
package jarfill

import "github.com/joypop/joypop-api/internal/model"

// Capacity is the number of star slots in a jar.
const Capacity = 60

// State describes how full the current jar is.
type State struct {
	Filled   int `json:"filled"`
	Empty    int `json:"empty"`
	Capacity int `json:"capacity"`
}

// Fill computes the state for the default capacity.
func Fill(stars []model.StarEntry) State {
	return FillWithCapacity(stars, Capacity)
}

// FillWithCapacity clamps the filled count to the capacity; stars beyond
// it are not displayed (the save flow runs before they become meaningful).
func FillWithCapacity(stars []model.StarEntry, capacity int) State {
	filled := len(stars)
	if filled > capacity {
		filled = capacity
	}
	return State{Filled: filled, Empty: capacity - filled, Capacity: capacity}
}

// Percent is the fill ratio in 0–100.
func (s State) Percent() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Filled) / float64(s.Capacity) * 100
}

// Full reports whether the jar is ready to be archived. Read-only
// predicate; it never triggers deletion itself.
func (s State) Full() bool {
	return s.Filled >= s.Capacity
}

// Quote picks the motivational line for the current fill level. Ordered
// threshold ladder, first matching band wins, most specific first.
func (s State) Quote() string {
	pct := s.Percent()
	switch {
	case s.Filled == 0:
		return "Your journey to joy begins with a single star"
	case s.Filled == 1:
		return "One star shines bright! Keep going!"
	case pct < 10:
		return "Every star is a step toward happiness!"
	case pct < 25:
		return "You're building something beautiful!"
	case pct < 50:
		return "Look at all this joy you're collecting!"
	case pct < 75:
		return "Your jar is filling with wonderful moments!"
	case pct < 90:
		return "Almost there! Your joy is overflowing!"
	case s.Filled < s.Capacity:
		return "So close to a full jar of happiness!"
	default:
		return "Your jar is full of beautiful memories!"
	}
}

// BottomUp lays out the filled slots from the bottom of the jar: the input
// is newest first, the output starts with the oldest displayed star so the
// jar fills bottom-to-top in creation order. At most capacity entries are
// kept.
func BottomUp(stars []model.StarEntry, capacity int) []model.StarEntry {
	if len(stars) > capacity {
		stars = stars[:capacity]
	}
	out := make([]model.StarEntry, len(stars))
	for i, s := range stars {
		out[len(stars)-1-i] = s
	}
	return out
}
