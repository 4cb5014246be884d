// SPDX-License-Identifier: MIT
package solver

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/slithermesh/clue"
	"github.com/katalvlaran/slithermesh/mesh"
)

// session owns all mutable search state for one solve. Edge states live in
// a dense slice; every transition away from Unknown is recorded in the undo
// stack, so rollback to any earlier checkpoint is a replay in reverse order.
type session struct {
	m     *mesh.Mesh
	clues []int // dense per-face clue values, clue.NoClue for unclued faces

	states          []EdgeState
	filledAtFace    []int
	unknownAtFace   []int
	filledAtVertex  []int
	unknownAtVertex []int
	unknownTotal    int

	undo *arraystack.Stack // of edge ids, in commit order

	limit       int // stop after this many solutions
	maxBranches int
	found       int
	stats       Stats
}

// newSession validates the clue set and prepares a fully Unknown state.
func newSession(m *mesh.Mesh, clues clue.Set, limit int, o Options) (*session, error) {
	dense := make([]int, m.NumFaces())
	for f := range dense {
		dense[f] = clue.NoClue
	}
	for f, c := range clues {
		if f < 0 || f >= m.NumFaces() {
			return nil, fmt.Errorf("face %d: %w", f, ErrClueIndex)
		}
		dense[f] = c
	}

	s := &session{
		m:               m,
		clues:           dense,
		states:          make([]EdgeState, m.NumEdges()),
		filledAtFace:    make([]int, m.NumFaces()),
		unknownAtFace:   make([]int, m.NumFaces()),
		filledAtVertex:  make([]int, m.NumVertices()),
		unknownAtVertex: make([]int, m.NumVertices()),
		unknownTotal:    m.NumEdges(),
		undo:            arraystack.New(),
		limit:           limit,
		maxBranches:     o.MaxBranches,
	}
	for f := 0; f < m.NumFaces(); f++ {
		s.unknownAtFace[f] = len(m.FaceEdges(f))
	}
	for v := 0; v < m.NumVertices(); v++ {
		s.unknownAtVertex[v] = len(m.VertexEdges(v))
	}
	return s, nil
}

// set commits edge e to state st (a one-way move from Unknown) and records
// it for rollback.
func (s *session) set(e int, st EdgeState) {
	s.states[e] = st
	s.undo.Push(e)
	s.unknownTotal--

	f1, f2 := s.m.EdgeFaces(e)
	u, v := s.m.Edge(e)
	s.unknownAtFace[f1]--
	s.unknownAtFace[f2]--
	s.unknownAtVertex[u]--
	s.unknownAtVertex[v]--
	if st == Filled {
		s.filledAtFace[f1]++
		s.filledAtFace[f2]++
		s.filledAtVertex[u]++
		s.filledAtVertex[v]++
	}
}

// checkpoint returns a mark identifying the current undo depth.
func (s *session) checkpoint() int { return s.undo.Size() }

// rollback reverts every commit made since the mark, most recent first.
func (s *session) rollback(mark int) {
	for s.undo.Size() > mark {
		top, _ := s.undo.Pop()
		e := top.(int)
		st := s.states[e]
		s.states[e] = Unknown
		s.unknownTotal++

		f1, f2 := s.m.EdgeFaces(e)
		u, v := s.m.Edge(e)
		s.unknownAtFace[f1]++
		s.unknownAtFace[f2]++
		s.unknownAtVertex[u]++
		s.unknownAtVertex[v]++
		if st == Filled {
			s.filledAtFace[f1]--
			s.filledAtFace[f2]--
			s.filledAtVertex[u]--
			s.filledAtVertex[v]--
		}
	}
}

// propagate applies the deterministic inference rules to a fixpoint.
// It returns false on contradiction (prune the branch).
func (s *session) propagate() bool {
	for {
		s.stats.Propagations++
		changed := false

		// Clue saturation per face.
		for f, c := range s.clues {
			if c == clue.NoClue {
				continue
			}
			fl, un := s.filledAtFace[f], s.unknownAtFace[f]
			if fl > c || fl+un < c {
				return false
			}
			if un == 0 {
				continue
			}
			switch {
			case fl == c:
				s.resolveFaceUnknowns(f, RuledOut)
				changed = true
			case fl+un == c:
				s.resolveFaceUnknowns(f, Filled)
				changed = true
			}
		}

		// Degree rules per vertex.
		for v := 0; v < s.m.NumVertices(); v++ {
			fv, uv := s.filledAtVertex[v], s.unknownAtVertex[v]
			if fv > 2 {
				return false
			}
			if fv == 2 && uv > 0 {
				s.resolveVertexUnknowns(v, RuledOut)
				changed = true
			}
			if fv == 1 {
				if uv == 0 {
					return false // dangling path end with no escape
				}
				if uv == 1 {
					s.resolveVertexUnknowns(v, Filled)
					changed = true
				}
			}
		}

		// Closed-cycle analysis.
		ok, cycleChanged := s.checkCycles()
		if !ok {
			return false
		}
		if cycleChanged {
			changed = true
		}

		if !changed {
			return true
		}
	}
}

// resolveFaceUnknowns commits every Unknown edge of face f to st.
func (s *session) resolveFaceUnknowns(f int, st EdgeState) {
	for _, e := range s.m.FaceEdges(f) {
		if s.states[e] == Unknown {
			s.set(e, st)
		}
	}
}

// resolveVertexUnknowns commits every Unknown edge at vertex v to st.
func (s *session) resolveVertexUnknowns(v int, st EdgeState) {
	for _, e := range s.m.VertexEdges(v) {
		if s.states[e] == Unknown {
			s.set(e, st)
		}
	}
}

// checkCycles inspects the connected components of the filled-edge
// subgraph. With vertex degrees capped at 2 every component is a path or a
// cycle. A cycle coexisting with any other filled component, or with a clue
// still short of its count, cannot extend to a single solution loop. A lone
// cycle satisfying every clue forces all remaining unknowns out.
func (s *session) checkCycles() (ok, changed bool) {
	comps, cycles := s.filledComponents()
	if cycles == 0 {
		return true, false
	}
	if comps > 1 {
		return false, false
	}
	for f, c := range s.clues {
		if c != clue.NoClue && s.filledAtFace[f] < c {
			return false, false
		}
	}
	// One closed cycle, all clues met: any further filled edge would start
	// a second component, so every Unknown edge is out.
	for e, st := range s.states {
		if st == Unknown {
			s.set(e, RuledOut)
			changed = true
		}
	}
	return true, changed
}

// filledComponents counts connected components of the filled subgraph and
// how many of them are closed cycles (every vertex degree exactly 2).
func (s *session) filledComponents() (comps, cycles int) {
	visited := make([]bool, s.m.NumVertices())
	for v0 := 0; v0 < s.m.NumVertices(); v0++ {
		if visited[v0] || s.filledAtVertex[v0] == 0 {
			continue
		}
		comps++
		isCycle := true
		queue := []int{v0}
		visited[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			if s.filledAtVertex[u] != 2 {
				isCycle = false
			}
			for _, e := range s.m.VertexEdges(u) {
				if s.states[e] != Filled {
					continue
				}
				a, b := s.m.Edge(e)
				w := a + b - u
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		if isCycle {
			cycles++
		}
	}
	return comps, cycles
}

// validAssignment reports whether the (fully decided) edge states form one
// simple closed loop satisfying every clue.
func (s *session) validAssignment() bool {
	filled := 0
	for _, st := range s.states {
		if st == Filled {
			filled++
		}
	}
	if filled == 0 {
		return false
	}
	for v := 0; v < s.m.NumVertices(); v++ {
		if d := s.filledAtVertex[v]; d != 0 && d != 2 {
			return false
		}
	}
	comps, cycles := s.filledComponents()
	if comps != 1 || cycles != 1 {
		return false
	}
	for f, c := range s.clues {
		if c != clue.NoClue && s.filledAtFace[f] != c {
			return false
		}
	}
	return true
}
