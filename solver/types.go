// Package solver decides whether a Slitherlink clue set on a polyhedral
// mesh admits exactly one solution loop.
package solver

import "errors"

// EdgeState is the search state of a mesh edge. Within a search branch an
// edge moves Unknown → Filled or Unknown → RuledOut exactly once; the move
// is reverted only by backtracking.
type EdgeState uint8

const (
	// Unknown: the edge is not yet decided.
	Unknown EdgeState = iota
	// Filled: the edge is part of the candidate loop.
	Filled
	// RuledOut: the edge is excluded from the candidate loop.
	RuledOut
)

// String returns a readable identifier for logs.
func (st EdgeState) String() string {
	switch st {
	case Filled:
		return "filled"
	case RuledOut:
		return "ruled-out"
	default:
		return "unknown"
	}
}

// Sentinel errors for solving.
var (
	// ErrClueIndex indicates a clue references a face id out of range.
	ErrClueIndex = errors.New("solver: clue face index out of range")
	// ErrBranchBudget indicates the search exceeded its branch cap before
	// settling uniqueness. Callers treat it as a failed attempt.
	ErrBranchBudget = errors.New("solver: branch budget exhausted")
)

// Options holds configurable parameters for the search.
type Options struct {
	// MaxBranches caps the number of branch nodes explored; 0 means no cap.
	// Exceeding the cap yields ErrBranchBudget. Default 1<<20.
	MaxBranches int
}

// Option configures optional behavior of Unique and CountSolutions.
type Option func(*Options)

// DefaultOptions returns the standard search parameters.
func DefaultOptions() Options {
	return Options{MaxBranches: 1 << 20}
}

// WithMaxBranches caps the search at n branch nodes (0 = no cap).
func WithMaxBranches(n int) Option {
	return func(o *Options) {
		o.MaxBranches = n
	}
}

// Stats reports the work performed by one search.
type Stats struct {
	// Branches is the number of branch nodes explored.
	Branches int
	// Propagations is the number of propagation fixpoint passes.
	Propagations int
	// Solutions is the number of full valid assignments found before the
	// search stopped (capped at the requested limit).
	Solutions int
}
