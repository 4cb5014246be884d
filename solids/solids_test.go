package solids_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/slithermesh/mesh"
	"github.com/katalvlaran/slithermesh/solids"
)

// TestAllBuildClosedMeshes: every dataset must pass full mesh validation
// with the classical F/V/E counts.
func TestAllBuildClosedMeshes(t *testing.T) {
	want := map[solids.Name][3]int{
		solids.Tetrahedron:  {4, 4, 6},
		solids.Cube:         {6, 8, 12},
		solids.Octahedron:   {8, 6, 12},
		solids.Dodecahedron: {12, 20, 30},
		solids.Icosahedron:  {20, 12, 30},
	}
	for _, n := range solids.All {
		t.Run(n.String(), func(t *testing.T) {
			m, err := mesh.New(solids.VertexCount(n), solids.Faces(n))
			if err != nil {
				t.Fatalf("mesh.New: %v", err)
			}
			w := want[n]
			if m.NumFaces() != w[0] || m.NumVertices() != w[1] || m.NumEdges() != w[2] {
				t.Errorf("F/V/E = %d/%d/%d; want %d/%d/%d",
					m.NumFaces(), m.NumVertices(), m.NumEdges(), w[0], w[1], w[2])
			}
		})
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want solids.Name
		err  bool
	}{
		{"cube", solids.Cube, false},
		{"Cube", solids.Cube, false},
		{"ICOSAHEDRON", solids.Icosahedron, false},
		{"sphere", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := solids.Parse(tc.in)
		if tc.err {
			if !errors.Is(err, solids.ErrUnknownSolid) {
				t.Errorf("Parse(%q) error = %v; want ErrUnknownSolid", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("Parse(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

// TestGrid_UnitSphere: every vertex of every dataset sits on the unit sphere
// and the grid round-trips through mesh validation.
func TestGrid_UnitSphere(t *testing.T) {
	for _, n := range solids.All {
		t.Run(n.String(), func(t *testing.T) {
			g := solids.Grid(n)
			if g.GridID != n.String() {
				t.Errorf("GridID = %q; want %q", g.GridID, n.String())
			}
			if len(g.Vertices) != solids.VertexCount(n) {
				t.Fatalf("%d vertex coordinates; want %d", len(g.Vertices), solids.VertexCount(n))
			}
			for v, xyz := range g.Vertices {
				norm := math.Sqrt(xyz[0]*xyz[0] + xyz[1]*xyz[1] + xyz[2]*xyz[2])
				if math.Abs(norm-1) > 1e-4 {
					t.Errorf("vertex %d has norm %.6f; want 1", v, norm)
				}
			}
			if _, err := g.Mesh(); err != nil {
				t.Errorf("Grid(%s).Mesh(): %v", n, err)
			}
		})
	}
}

// TestFaces_Copy: accessors must hand out copies, not internal storage.
func TestFaces_Copy(t *testing.T) {
	a := solids.Faces(solids.Tetrahedron)
	a[0][0] = 99
	b := solids.Faces(solids.Tetrahedron)
	if b[0][0] == 99 {
		t.Error("mutating a returned face list leaked into the dataset")
	}
}
