// SPDX-License-Identifier: MIT

// Package dual models the dual graph of a polyhedral mesh: one node per
// face, one undirected edge per pair of faces sharing a mesh edge.
//
// The topology is derived deterministically from the mesh and frozen at
// construction; only the per-node two-coloring mutates afterwards. The
// package exists to answer the one non-trivial question region painting
// keeps asking: "do the faces of this color still form a single connected
// component?"
//
// Complexity: New is O(F+E); Components is O(F+E) per call; everything
// else is O(1).
package dual

import (
	"github.com/katalvlaran/slithermesh/mesh"
)

// Color is the painting state of a face node.
type Color uint8

const (
	// Uncolored marks a face not yet assigned to a region.
	Uncolored Color = iota
	// Red is the first region color.
	Red
	// Blue is the second region color.
	Blue
)

// String returns a readable identifier for logs and errors.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "uncolored"
	}
}

// Opposite returns the other region color. Uncolored is its own opposite.
func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return Uncolored
	}
}

// Graph is the face-adjacency dual of a mesh plus mutable per-face colors.
// Adjacency never changes after New; colors change via SetColor only.
type Graph struct {
	adj    [][]int // face id → adjacent face ids
	colors []Color
	counts [3]int // population per Color value
}

// New derives the dual graph of m with every face Uncolored.
func New(m *mesh.Mesh) *Graph {
	g := &Graph{
		adj:    make([][]int, m.NumFaces()),
		colors: make([]Color, m.NumFaces()),
	}
	for f := 0; f < m.NumFaces(); f++ {
		g.adj[f] = m.FaceNeighbors(f)
	}
	g.counts[Uncolored] = m.NumFaces()
	return g
}

// NumNodes returns the number of face nodes.
func (g *Graph) NumNodes() int { return len(g.adj) }

// Neighbors returns the faces adjacent to face f. Read-only.
func (g *Graph) Neighbors(f int) []int { return g.adj[f] }

// ColorOf returns the current color of face f.
func (g *Graph) ColorOf(f int) Color { return g.colors[f] }

// SetColor paints face f with color c, maintaining population counts.
func (g *Graph) SetColor(f int, c Color) {
	g.counts[g.colors[f]]--
	g.colors[f] = c
	g.counts[c]++
}

// Count returns the number of faces currently painted c.
func (g *Graph) Count(c Color) int { return g.counts[c] }

// Colors returns a copy of the per-face color slice, indexed by face id.
func (g *Graph) Colors() []Color {
	return append([]Color(nil), g.colors...)
}

// Components returns the connected components of the subgraph induced by
// faces of color c. Each component is a slice of face ids in BFS order;
// components are emitted in order of their smallest face id.
func (g *Graph) Components(c Color) [][]int {
	seen := make([]bool, len(g.adj))
	var comps [][]int

	for f := range g.adj {
		if g.colors[f] != c || seen[f] {
			continue
		}
		// BFS restricted to same-colored neighbors.
		queue := []int{f}
		seen[f] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.adj[u] {
				if g.colors[v] == c && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
