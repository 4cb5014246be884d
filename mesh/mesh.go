// SPDX-License-Identifier: MIT
package mesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for mesh construction.
var (
	// ErrNoFaces indicates the face list is empty.
	ErrNoFaces = errors.New("mesh: face list is empty")
	// ErrDegenerateFace indicates a face with fewer than 3 vertices or a repeated vertex.
	ErrDegenerateFace = errors.New("mesh: face is degenerate")
	// ErrVertexIndex indicates a face references a vertex id out of range.
	ErrVertexIndex = errors.New("mesh: vertex index out of range")
	// ErrOpenSurface indicates an edge bordering fewer than two faces.
	ErrOpenSurface = errors.New("mesh: surface is not closed")
	// ErrNonManifoldEdge indicates an edge bordering more than two faces.
	ErrNonManifoldEdge = errors.New("mesh: non-manifold edge")
	// ErrEulerFormula indicates F + V ≠ E + 2 for the built surface.
	ErrEulerFormula = errors.New("mesh: Euler formula violated")
)

// edgeKey is the canonical unordered vertex pair (U < V) identifying an edge.
type edgeKey struct{ U, V int }

// canonical returns the edgeKey for an (a,b) vertex pair in canonical order.
func canonical(a, b int) edgeKey {
	if a < b {
		return edgeKey{U: a, V: b}
	}
	return edgeKey{U: b, V: a}
}

// Mesh is the immutable adjacency model of a closed polyhedral surface.
// All slices returned by query methods alias internal storage and must be
// treated as read-only; Mesh itself never changes after New returns.
type Mesh struct {
	numVertices int
	faces       [][]int // face id → ordered bounding vertex ids
	edges       [][2]int
	edgeIDs     map[edgeKey]int
	edgeFaces   [][2]int // edge id → the two incident faces
	faceEdges   [][]int  // face id → edge ids, in winding order
	faceAdj     [][]int  // face id → neighboring faces (one per shared edge)
	vertexAdj   [][]int  // vertex id → neighboring vertices
	vertexEdges [][]int  // vertex id → incident edge ids
}

// New builds and validates a Mesh from a vertex count and ordered face lists.
// Faces reference vertices by index; each consecutive pair (cyclically) forms
// an edge. New fails unless the surface is closed, manifold, and genus-0.
func New(vertexCount int, faces [][]int) (*Mesh, error) {
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}

	m := &Mesh{
		numVertices: vertexCount,
		faces:       make([][]int, len(faces)),
		edgeIDs:     make(map[edgeKey]int),
		faceEdges:   make([][]int, len(faces)),
		faceAdj:     make([][]int, len(faces)),
		vertexAdj:   make([][]int, vertexCount),
		vertexEdges: make([][]int, vertexCount),
	}

	// Pass 1: validate faces, register edges, attach incident faces.
	for f, verts := range faces {
		if len(verts) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices: %w", f, len(verts), ErrDegenerateFace)
		}
		seen := make(map[int]struct{}, len(verts))
		for _, v := range verts {
			if v < 0 || v >= vertexCount {
				return nil, fmt.Errorf("face %d references vertex %d: %w", f, v, ErrVertexIndex)
			}
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("face %d repeats vertex %d: %w", f, v, ErrDegenerateFace)
			}
			seen[v] = struct{}{}
		}
		m.faces[f] = append([]int(nil), verts...)
		m.faceEdges[f] = make([]int, len(verts))
		for i, u := range verts {
			w := verts[(i+1)%len(verts)]
			e, err := m.registerEdge(u, w, f)
			if err != nil {
				return nil, err
			}
			m.faceEdges[f][i] = e
		}
	}

	// Pass 2: closed-surface check and derived adjacency.
	for e, fs := range m.edgeFaces {
		if fs[1] < 0 {
			return nil, fmt.Errorf("edge %v borders a single face: %w", m.edges[e], ErrOpenSurface)
		}
		m.faceAdj[fs[0]] = append(m.faceAdj[fs[0]], fs[1])
		m.faceAdj[fs[1]] = append(m.faceAdj[fs[1]], fs[0])
		u, v := m.edges[e][0], m.edges[e][1]
		m.vertexAdj[u] = append(m.vertexAdj[u], v)
		m.vertexAdj[v] = append(m.vertexAdj[v], u)
		m.vertexEdges[u] = append(m.vertexEdges[u], e)
		m.vertexEdges[v] = append(m.vertexEdges[v], e)
	}

	// Genus-0 closed surface: F + V = E + 2.
	if len(m.faces)+m.numVertices != len(m.edges)+2 {
		return nil, fmt.Errorf("F=%d V=%d E=%d: %w",
			len(m.faces), m.numVertices, len(m.edges), ErrEulerFormula)
	}
	return m, nil
}

// registerEdge resolves (u,w) to a dense edge id, creating it on first sight,
// and records face f as incident. A third incident face is non-manifold.
func (m *Mesh) registerEdge(u, w, f int) (int, error) {
	k := canonical(u, w)
	e, ok := m.edgeIDs[k]
	if !ok {
		e = len(m.edges)
		m.edgeIDs[k] = e
		m.edges = append(m.edges, [2]int{k.U, k.V})
		m.edgeFaces = append(m.edgeFaces, [2]int{f, -1})
		return e, nil
	}
	if m.edgeFaces[e][1] >= 0 {
		return 0, fmt.Errorf("edge (%d,%d): %w", k.U, k.V, ErrNonManifoldEdge)
	}
	m.edgeFaces[e][1] = f
	return e, nil
}

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return m.numVertices }

// NumEdges returns the number of distinct edges.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// FaceVertices returns face f's bounding vertex ids in winding order.
func (m *Mesh) FaceVertices(f int) []int { return m.faces[f] }

// FaceEdges returns face f's edge ids in winding order.
func (m *Mesh) FaceEdges(f int) []int { return m.faceEdges[f] }

// FaceNeighbors returns the faces sharing an edge with face f.
func (m *Mesh) FaceNeighbors(f int) []int { return m.faceAdj[f] }

// VertexNeighbors returns the vertices sharing an edge with vertex v.
func (m *Mesh) VertexNeighbors(v int) []int { return m.vertexAdj[v] }

// VertexEdges returns the edge ids incident to vertex v.
func (m *Mesh) VertexEdges(v int) []int { return m.vertexEdges[v] }

// Edge returns the canonical (smaller, larger) vertex pair of edge e.
func (m *Mesh) Edge(e int) (int, int) { return m.edges[e][0], m.edges[e][1] }

// EdgeFaces returns the two faces incident to edge e.
func (m *Mesh) EdgeFaces(e int) (int, int) { return m.edgeFaces[e][0], m.edgeFaces[e][1] }

// EdgeIndex resolves an unordered vertex pair to its edge id.
// The second result is false when no such edge exists.
func (m *Mesh) EdgeIndex(u, v int) (int, bool) {
	e, ok := m.edgeIDs[canonical(u, v)]
	return e, ok
}
