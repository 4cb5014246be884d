package mesh_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/slithermesh/mesh"
	"github.com/katalvlaran/slithermesh/solids"
)

//----------------------------------------------------------------------------//
// Construction error tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed or open surfaces.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		vertices int
		faces    [][]int
		err      error
	}{
		{"NoFaces", 4, [][]int{}, mesh.ErrNoFaces},
		{"TwoVertexFace", 4, [][]int{{0, 1}}, mesh.ErrDegenerateFace},
		{"RepeatedVertex", 4, [][]int{{0, 1, 1}}, mesh.ErrDegenerateFace},
		{"VertexOutOfRange", 3, [][]int{{0, 1, 7}}, mesh.ErrVertexIndex},
		{"NegativeVertex", 3, [][]int{{0, 1, -1}}, mesh.ErrVertexIndex},
		// A single triangle is a textbook open surface.
		{"OpenSurface", 3, [][]int{{0, 1, 2}}, mesh.ErrOpenSurface},
		// A cube missing its top face leaves four edges with one face each.
		{"OpenCube", 8, [][]int{
			{0, 1, 2, 3},
			{0, 4, 5, 1}, {1, 5, 6, 2}, {2, 6, 7, 3}, {3, 7, 4, 0},
		}, mesh.ErrOpenSurface},
		// The same triangle glued to itself three times is non-manifold.
		{"NonManifold", 3, [][]int{{0, 1, 2}, {2, 1, 0}, {0, 2, 1}}, mesh.ErrNonManifoldEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.New(tc.vertices, tc.faces)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d, %v) error = %v; want %v", tc.vertices, tc.faces, err, tc.err)
			}
		})
	}
}

// TestNew_EulerFormula verifies the F + V = E + 2 pre-check: two triangles
// glued back to back close the surface but describe a degenerate sphere
// that still satisfies Euler, so use an extra isolated vertex to break it.
func TestNew_EulerFormula(t *testing.T) {
	// Two triangles sharing all three edges: F=2, E=3, V=3 → 2+3 = 3+2 holds.
	if _, err := mesh.New(3, [][]int{{0, 1, 2}, {0, 2, 1}}); err != nil {
		t.Fatalf("doubled triangle: unexpected error %v", err)
	}
	// Same surface with an unused vertex: 2+4 ≠ 3+2.
	_, err := mesh.New(4, [][]int{{0, 1, 2}, {0, 2, 1}})
	if !errors.Is(err, mesh.ErrEulerFormula) {
		t.Errorf("error = %v; want ErrEulerFormula", err)
	}
}

//----------------------------------------------------------------------------//
// Query tests on Platonic fixtures
//----------------------------------------------------------------------------//

// TestCounts checks F/V/E for all five Platonic solids (and, implicitly,
// that each builds as a closed genus-0 surface).
func TestCounts(t *testing.T) {
	cases := []struct {
		solid   solids.Name
		f, v, e int
	}{
		{solids.Tetrahedron, 4, 4, 6},
		{solids.Cube, 6, 8, 12},
		{solids.Octahedron, 8, 6, 12},
		{solids.Dodecahedron, 12, 20, 30},
		{solids.Icosahedron, 20, 12, 30},
	}
	for _, tc := range cases {
		t.Run(tc.solid.String(), func(t *testing.T) {
			m, err := mesh.New(solids.VertexCount(tc.solid), solids.Faces(tc.solid))
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if m.NumFaces() != tc.f || m.NumVertices() != tc.v || m.NumEdges() != tc.e {
				t.Errorf("F/V/E = %d/%d/%d; want %d/%d/%d",
					m.NumFaces(), m.NumVertices(), m.NumEdges(), tc.f, tc.v, tc.e)
			}
		})
	}
}

// TestTetrahedronQueries exercises the adjacency queries on the smallest
// closed mesh: every face neighbors every other, every vertex sees the
// other three.
func TestTetrahedronQueries(t *testing.T) {
	m, err := mesh.New(solids.VertexCount(solids.Tetrahedron), solids.Faces(solids.Tetrahedron))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for f := 0; f < m.NumFaces(); f++ {
		if got := len(m.FaceNeighbors(f)); got != 3 {
			t.Errorf("FaceNeighbors(%d) = %d faces; want 3", f, got)
		}
		if got := len(m.FaceEdges(f)); got != 3 {
			t.Errorf("FaceEdges(%d) = %d edges; want 3", f, got)
		}
	}
	for v := 0; v < m.NumVertices(); v++ {
		nbrs := append([]int(nil), m.VertexNeighbors(v)...)
		sort.Ints(nbrs)
		if len(nbrs) != 3 || nbrs[0] == v || nbrs[1] == v || nbrs[2] == v {
			t.Errorf("VertexNeighbors(%d) = %v; want the other three vertices", v, nbrs)
		}
		if got := len(m.VertexEdges(v)); got != 3 {
			t.Errorf("VertexEdges(%d) = %d edges; want 3", v, got)
		}
	}
}

// TestEdgeIdentity verifies canonical edge resolution and incidence.
func TestEdgeIdentity(t *testing.T) {
	m, err := mesh.New(solids.VertexCount(solids.Cube), solids.Faces(solids.Cube))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	e1, ok1 := m.EdgeIndex(0, 1)
	e2, ok2 := m.EdgeIndex(1, 0)
	if !ok1 || !ok2 || e1 != e2 {
		t.Fatalf("EdgeIndex(0,1)=%d,%v EdgeIndex(1,0)=%d,%v; want same edge", e1, ok1, e2, ok2)
	}
	u, v := m.Edge(e1)
	if u != 0 || v != 1 {
		t.Errorf("Edge(%d) = (%d,%d); want canonical (0,1)", e1, u, v)
	}
	if _, ok := m.EdgeIndex(0, 6); ok {
		t.Error("EdgeIndex(0,6) found an edge on a cube diagonal")
	}

	// Every edge reports exactly two distinct incident faces.
	for e := 0; e < m.NumEdges(); e++ {
		f1, f2 := m.EdgeFaces(e)
		if f1 == f2 || f1 < 0 || f2 < 0 {
			t.Errorf("EdgeFaces(%d) = (%d,%d); want two distinct faces", e, f1, f2)
		}
	}
}
