// SPDX-License-Identifier: MIT

// Package loop extracts the closed solution loop separating the two colored
// regions of a painted mesh.
//
// A mesh edge is a "wall" when its two incident faces differ in color; on a
// converged two-coloring of a closed genus-0 mesh the wall edges form one
// simple cycle: exactly two walls meet at every vertex on the loop and zero
// at every other vertex. Extract walks that cycle and returns its vertices
// in order.
//
// Errors:
//
//   - ErrNoBoundary: no wall edge exists (the coloring is monochrome);
//     indicates a painter invariant violation, not a recoverable input.
//   - ErrOpenPath: the walk cannot continue or fails to close; likewise an
//     internal-defect signal that aborts the generation attempt.
package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slithermesh/dual"
	"github.com/katalvlaran/slithermesh/mesh"
)

var (
	// ErrNoBoundary indicates that no edge separates differently colored faces.
	ErrNoBoundary = errors.New("loop: no boundary edge between colors")
	// ErrOpenPath indicates the boundary trace did not return to its start.
	ErrOpenPath = errors.New("loop: boundary trace did not close")
)

// isWall reports whether edge e separates two differently colored faces.
func isWall(m *mesh.Mesh, colors []dual.Color, e int) bool {
	f1, f2 := m.EdgeFaces(e)
	return colors[f1] != colors[f2]
}

// Extract returns the ordered vertex ids of the loop formed by the wall
// edges of the given coloring. The result starts at an arbitrary wall edge;
// consecutive entries (cyclically) are always mesh edges.
//
// Time: O(E) to seed plus O(L·d) for the walk, L = loop length,
// d = max vertex degree.
func Extract(m *mesh.Mesh, colors []dual.Color) ([]int, error) {
	// Seed on any wall edge.
	start, next := -1, -1
	for e := 0; e < m.NumEdges(); e++ {
		if isWall(m, colors, e) {
			start, next = m.Edge(e)
			break
		}
	}
	if start < 0 {
		return nil, ErrNoBoundary
	}

	solution := []int{start, next}
	prev := start
	// Each vertex on the loop has exactly two wall edges, so from `next`
	// there is exactly one onward wall edge besides the one just walked.
	// The walk must close within NumEdges steps; anything longer means the
	// wall set is not a simple cycle.
	for steps := 0; steps <= m.NumEdges(); steps++ {
		found := false
		for _, nb := range m.VertexNeighbors(next) {
			if nb == prev {
				continue
			}
			e, ok := m.EdgeIndex(next, nb)
			if !ok || !isWall(m, colors, e) {
				continue
			}
			if nb == start {
				return solution, nil
			}
			solution = append(solution, nb)
			prev, next = next, nb
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("stuck at vertex %d after %d vertices: %w",
				next, len(solution), ErrOpenPath)
		}
	}
	return nil, fmt.Errorf("trace exceeded %d edges without closing: %w",
		m.NumEdges(), ErrOpenPath)
}
