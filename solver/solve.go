// SPDX-License-Identifier: MIT
package solver

import (
	"github.com/katalvlaran/slithermesh/clue"
	"github.com/katalvlaran/slithermesh/mesh"
)

// Unique reports whether the clue set admits exactly one assignment of edge
// states forming a single valid loop. It never compares against a stored
// solution: "exactly one globally valid loop exists" is the contract.
//
// The search aborts as soon as a second solution is found, so a wildly
// ambiguous clue set costs little more than an unambiguous one.
func Unique(m *mesh.Mesh, clues clue.Set, opts ...Option) (bool, error) {
	n, _, err := CountSolutions(m, clues, 2, opts...)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// CountSolutions counts full valid assignments for the clue set, stopping
// once `limit` of them are found. Stats reports the search effort either
// way; ErrBranchBudget is returned when the branch cap is hit first.
func CountSolutions(m *mesh.Mesh, clues clue.Set, limit int, opts ...Option) (int, Stats, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s, err := newSession(m, clues, limit, o)
	if err != nil {
		return 0, Stats{}, err
	}
	err = s.search()
	s.stats.Solutions = s.found
	return s.found, s.stats, err
}

// search runs propagation then branches on the most constrained unknown
// edge, trying Filled before RuledOut. State between branches is restored
// by rolling the undo log back to the pre-branch checkpoint.
func (s *session) search() error {
	if !s.propagate() {
		return nil // contradiction: prune
	}
	if s.unknownTotal == 0 {
		if s.validAssignment() {
			s.found++
		}
		return nil
	}

	e := s.pickEdge()
	for _, st := range [2]EdgeState{Filled, RuledOut} {
		if s.found >= s.limit {
			return nil
		}
		s.stats.Branches++
		if s.maxBranches > 0 && s.stats.Branches > s.maxBranches {
			return ErrBranchBudget
		}
		mark := s.checkpoint()
		s.set(e, st)
		if err := s.search(); err != nil {
			return err
		}
		s.rollback(mark)
	}
	return nil
}

// pickEdge chooses the most constrained Unknown edge: incident clued faces
// weigh heaviest, then the filled degree of its endpoints.
func (s *session) pickEdge() int {
	best, bestScore := -1, -1
	for e, st := range s.states {
		if st != Unknown {
			continue
		}
		score := 0
		f1, f2 := s.m.EdgeFaces(e)
		if s.clues[f1] != clue.NoClue {
			score += 8
		}
		if s.clues[f2] != clue.NoClue {
			score += 8
		}
		u, v := s.m.Edge(e)
		score += s.filledAtVertex[u] + s.filledAtVertex[v]
		if score > bestScore {
			best, bestScore = e, score
		}
	}
	return best
}
