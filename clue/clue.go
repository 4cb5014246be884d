// SPDX-License-Identifier: MIT

// Package clue derives per-face wall counts from a solution coloring and
// samples sparse clue sets from them.
//
// A face's wall count is the number of its edges on the solution loop,
// i.e. the number of its neighbors painted the opposite color. A clue set
// maps a subset of face ids to their wall counts; the dense export uses -1
// for faces without a clue, matching the puzzle JSON format.
package clue

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/slithermesh/dual"
	"github.com/katalvlaran/slithermesh/mesh"
)

// NoClue is the dense-export marker for a face without a clue.
const NoClue = -1

// DefaultFraction is the default share of faces receiving a clue.
const DefaultFraction = 0.3

// Set is a sparse clue assignment: face id → wall count.
type Set map[int]int

// Dense exports the set as a list indexed by face id, NoClue in the gaps.
// Trailing gaps are trimmed, so the result may be shorter than the face
// count; an empty set yields a nil slice.
func (s Set) Dense() []int {
	last := -1
	for f := range s {
		if f > last {
			last = f
		}
	}
	if last < 0 {
		return nil
	}
	out := make([]int, last+1)
	for i := range out {
		out[i] = NoClue
	}
	for f, c := range s {
		out[f] = c
	}
	return out
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for f, c := range s {
		out[f] = c
	}
	return out
}

// CountWalls returns, per face, the number of incident edges whose other
// face has a different color. The sum over all faces is twice the loop
// length, since every wall edge is counted by both of its faces.
func CountWalls(m *mesh.Mesh, colors []dual.Color) []int {
	walls := make([]int, m.NumFaces())
	for f := 0; f < m.NumFaces(); f++ {
		for _, n := range m.FaceNeighbors(f) {
			if colors[n] != colors[f] {
				walls[f]++
			}
		}
	}
	return walls
}

// FullSet returns the clue set covering every face. A fully clued puzzle is
// trivially solvable and always unique.
func FullSet(numWalls []int) Set {
	s := make(Set, len(numWalls))
	for f, w := range numWalls {
		s[f] = w
	}
	return s
}

// Options holds configurable parameters for Propose.
type Options struct {
	// Rand is the randomness source; nil defaults to a time-seeded source.
	Rand *rand.Rand
	// Fraction is the share of faces receiving a clue (default 0.3).
	Fraction float64
}

// Option configures optional behavior of Propose.
type Option func(*Options)

// WithRand sets the randomness source. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithFraction sets the clued share of faces. Values outside (0,1] are ignored.
func WithFraction(f float64) Option {
	return func(o *Options) {
		if f > 0 && f <= 1 {
			o.Fraction = f
		}
	}
}

// Propose samples ⌈Fraction·F⌉ distinct faces uniformly at random and
// records their wall counts. Purely a sampling policy: deterministic for a
// fixed seeded source, no failure mode.
func Propose(numWalls []int, opts ...Option) Set {
	o := Options{Fraction: DefaultFraction}
	for _, fn := range opts {
		fn(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	want := int(math.Ceil(o.Fraction * float64(len(numWalls))))
	if want > len(numWalls) {
		want = len(numWalls)
	}
	s := make(Set, want)
	for _, f := range rng.Perm(len(numWalls))[:want] {
		s[f] = numWalls[f]
	}
	return s
}
