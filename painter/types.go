// Package painter partitions the faces of a dual graph into two connected
// regions suitable for Slitherlink solution loops: both regions connected,
// both above a population floor, and no "boring" pocket where a face and a
// neighbor see the same color on every side.
package painter

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/slithermesh/dual"
)

// ErrNotConverged is returned when painting exceeds its iteration cap
// before reaching a stable coloring. Callers restart with a fresh seed.
var ErrNotConverged = errors.New("painter: coloring did not converge within iteration cap")

// Transition identifies the kind of state change reported to an Observer.
type Transition int

const (
	// TransitionRepaint is a population-balancing repaint.
	TransitionRepaint Transition = iota
	// TransitionGrow is a connectivity repair (smallest component grew by one face).
	TransitionGrow
	// TransitionFlip is a boring-neighborhood fix (one of a boring pair flipped).
	TransitionFlip
)

// String returns a readable identifier for logs.
func (t Transition) String() string {
	switch t {
	case TransitionRepaint:
		return "repaint"
	case TransitionGrow:
		return "grow"
	case TransitionFlip:
		return "flip"
	default:
		return "unknown"
	}
}

// Observer is invoked after each meaningful state transition with the face
// that changed and its new color. Observers must not mutate the graph.
type Observer func(t Transition, face int, c dual.Color)

// Options holds configurable parameters for Paint.
type Options struct {
	// Rand is the randomness source; nil defaults to a time-seeded source.
	Rand *rand.Rand

	// MaxIterations caps the outer repair loop; exceeding it yields
	// ErrNotConverged. Default 1000.
	MaxIterations int

	// MinRegionFraction is the population floor for each color as a
	// fraction of the face count (at least one face regardless).
	// Default 1/3.
	MinRegionFraction float64

	// Observer, if non-nil, is notified after every repaint, grow, and
	// flip. The painter never depends on a display existing.
	Observer Observer
}

// Option configures optional behavior of Paint.
type Option func(*Options)

// DefaultOptions returns the standard painting parameters.
func DefaultOptions() Options {
	return Options{
		Rand:              nil,
		MaxIterations:     1000,
		MinRegionFraction: 1.0 / 3.0,
		Observer:          nil,
	}
}

// WithRand sets the randomness source. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithMaxIterations caps the outer repair loop at n iterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithMinRegionFraction sets the per-color population floor as a fraction
// of the face count. Values outside (0,1) are ignored.
func WithMinRegionFraction(f float64) Option {
	return func(o *Options) {
		if f > 0 && f < 1 {
			o.MinRegionFraction = f
		}
	}
}

// WithObserver installs fn as the state-transition observer.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// Stats reports what Paint did to reach convergence.
type Stats struct {
	// Iterations is the number of outer repair passes, including the
	// final quiet pass.
	Iterations int
	// Repaints counts population-balancing repaints.
	Repaints int
	// Grows counts connectivity-repair repaints.
	Grows int
	// Flips counts boring-neighborhood fixes.
	Flips int
}
