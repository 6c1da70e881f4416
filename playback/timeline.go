// Package playback answers which compiled cues should be on screen at given
// media time.
package playback

import (
	"math"
	"slices"

	"ttc/ttml"
)

// Timeline is read-only view over compiled cues. Safe for concurrent use.
type Timeline struct {
	cues []ttml.Cue
	// sorted unique cue boundaries
	edges []float64
}

func NewTimeline(cues []ttml.Cue) *Timeline {
	tl := &Timeline{cues: cues}
	for i := range cues {
		tl.edges = append(tl.edges, cues[i].Start, cues[i].End)
	}
	slices.Sort(tl.edges)
	tl.edges = slices.Compact(tl.edges)
	return tl
}

func (tl *Timeline) Len() int {
	return len(tl.cues)
}

// Cues returns cues in document order. Callers must not modify them.
func (tl *Timeline) Cues() []ttml.Cue {
	return tl.cues
}

// Active returns indexes of every cue showing at t (start <= t < end) in
// document order.
func (tl *Timeline) Active(t float64) []int {
	var out []int
	for i := range tl.cues {
		if tl.cues[i].Contains(t) {
			out = append(out, i)
		}
	}
	return out
}

// Current picks single cue for t: among cues already started, one with the
// start closest to t, earlier cue wins a tie. Picked cue may have ended
// already, caller compares t with its end when that matters. Returns false
// when no cue has started yet.
func (tl *Timeline) Current(t float64) (int, bool) {
	best, diff := -1, math.Inf(1)
	for i := range tl.cues {
		if tl.cues[i].Start > t {
			continue
		}
		if d := t - tl.cues[i].Start; d < diff {
			best, diff = i, d
		}
	}
	return best, best >= 0
}

// NextChange returns the first cue boundary strictly after t, false when
// nothing changes after t anymore.
func (tl *Timeline) NextChange(t float64) (float64, bool) {
	i, found := slices.BinarySearch(tl.edges, t)
	if found {
		i++
	}
	if i >= len(tl.edges) {
		return 0, false
	}
	return tl.edges[i], true
}

// Span returns earliest start and latest end of all cues.
func (tl *Timeline) Span() (float64, float64) {
	if len(tl.edges) == 0 {
		return 0, 0
	}
	return tl.edges[0], tl.edges[len(tl.edges)-1]
}
