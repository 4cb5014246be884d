package loop_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/slithermesh/dual"
	"github.com/katalvlaran/slithermesh/loop"
	"github.com/katalvlaran/slithermesh/mesh"
	"github.com/katalvlaran/slithermesh/solids"
)

func buildMesh(t *testing.T, s solids.Name) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(solids.VertexCount(s), solids.Faces(s))
	if err != nil {
		t.Fatalf("mesh.New(%s): %v", s, err)
	}
	return m
}

// colorFaces paints the listed faces Red and every other face Blue.
func colorFaces(numFaces int, red ...int) []dual.Color {
	colors := make([]dual.Color, numFaces)
	for f := range colors {
		colors[f] = dual.Blue
	}
	for _, f := range red {
		colors[f] = dual.Red
	}
	return colors
}

// assertLoop checks that verts is a simple cycle of mesh edges of the
// expected length and that it contains exactly the wall vertices.
func assertLoop(t *testing.T, m *mesh.Mesh, verts []int, wantLen int) {
	t.Helper()
	if len(verts) != wantLen {
		t.Fatalf("loop length = %d (%v); want %d", len(verts), verts, wantLen)
	}
	seen := make(map[int]struct{}, len(verts))
	for i, v := range verts {
		if _, dup := seen[v]; dup {
			t.Fatalf("vertex %d repeats in loop %v", v, verts)
		}
		seen[v] = struct{}{}
		w := verts[(i+1)%len(verts)]
		if _, ok := m.EdgeIndex(v, w); !ok {
			t.Fatalf("consecutive vertices %d,%d are not a mesh edge in %v", v, w, verts)
		}
	}
}

// TestExtract_Tetrahedron covers both split shapes on the smallest mesh.
// Faces: 0={0,1,2} 1={0,3,1} 2={0,2,3} 3={1,3,2}.
func TestExtract_Tetrahedron(t *testing.T) {
	m := buildMesh(t, solids.Tetrahedron)

	// One red face: its three bounding vertices form a triangle loop.
	verts, err := loop.Extract(m, colorFaces(4, 0))
	if err != nil {
		t.Fatalf("1-3 split: %v", err)
	}
	assertLoop(t, m, verts, 3)
	for _, want := range []int{0, 1, 2} {
		found := false
		for _, v := range verts {
			if v == want {
				found = true
			}
		}
		if !found {
			t.Errorf("1-3 split: vertex %d missing from loop %v", want, verts)
		}
	}

	// Two red faces sharing an edge: the loop visits all four vertices.
	verts, err = loop.Extract(m, colorFaces(4, 0, 1))
	if err != nil {
		t.Fatalf("2-2 split: %v", err)
	}
	assertLoop(t, m, verts, 4)
}

// TestExtract_Cube covers single-face and two-face regions.
// Faces: 0 bottom {0,1,2,3}, 1 top, 2..5 sides.
func TestExtract_Cube(t *testing.T) {
	m := buildMesh(t, solids.Cube)

	// Bottom face alone: its four corners.
	verts, err := loop.Extract(m, colorFaces(6, 0))
	if err != nil {
		t.Fatalf("single face: %v", err)
	}
	assertLoop(t, m, verts, 4)

	// Bottom plus one adjacent side: a hexagonal band around both.
	verts, err = loop.Extract(m, colorFaces(6, 0, 2))
	if err != nil {
		t.Fatalf("two faces: %v", err)
	}
	assertLoop(t, m, verts, 6)

	// Bottom plus two adjacent sides: still a disc, so the loop length
	// equals the wall-edge count of the coloring.
	colors := colorFaces(6, 0, 2, 3)
	verts, err = loop.Extract(m, colors)
	if err != nil {
		t.Fatalf("three faces: %v", err)
	}
	walls := 0
	for e := 0; e < m.NumEdges(); e++ {
		f1, f2 := m.EdgeFaces(e)
		if colors[f1] != colors[f2] {
			walls++
		}
	}
	assertLoop(t, m, verts, walls)
}

// TestExtract_ColorSymmetric verifies that swapping the region colors yields
// the same cycle as a vertex set.
func TestExtract_ColorSymmetric(t *testing.T) {
	m := buildMesh(t, solids.Cube)

	a, err := loop.Extract(m, colorFaces(6, 0, 2))
	if err != nil {
		t.Fatal(err)
	}
	b, err := loop.Extract(m, colorFaces(6, 1, 3, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	setOf := func(vs []int) map[int]struct{} {
		out := make(map[int]struct{}, len(vs))
		for _, v := range vs {
			out[v] = struct{}{}
		}
		return out
	}
	as, bs := setOf(a), setOf(b)
	if len(as) != len(bs) {
		t.Fatalf("vertex sets differ in size: %v vs %v", a, b)
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			t.Fatalf("vertex %d in one loop but not the other: %v vs %v", v, a, b)
		}
	}
}

// TestExtract_NoBoundary rejects a monochrome coloring.
func TestExtract_NoBoundary(t *testing.T) {
	m := buildMesh(t, solids.Tetrahedron)
	_, err := loop.Extract(m, colorFaces(4))
	if !errors.Is(err, loop.ErrNoBoundary) {
		t.Errorf("error = %v; want ErrNoBoundary", err)
	}
}
