// SPDX-License-Identifier: MIT

// Package solids provides canonical vertex/face datasets for the five
// Platonic solids, the standard closed test meshes of the puzzle engine and
// the CLI's built-in demo grids.
//
// Design:
//
//   - Single source of truth for the 5 Platonic surfaces (vertex counts,
//     face lists in winding order, unit-sphere coordinates).
//   - Datasets are constructed deterministically at init() and kept
//     immutable; accessors return fresh copies.
//   - Labelings reuse the classical "rings + poles" constructions, so the
//     face lists can be written (or audited) by hand against the counts
//     F/V/E = 4/4/6, 6/8/12, 8/6/12, 12/20/30, 20/12/30.
package solids

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/slithermesh/grid"
)

// ErrUnknownSolid indicates a name outside the five Platonic solids.
var ErrUnknownSolid = errors.New("solids: unknown solid")

// Name enumerates the five Platonic solids.
type Name int

// Enum values (stable ordering).
const (
	Tetrahedron  Name = iota // F=4,  V=4,  E=6
	Cube                     // F=6,  V=8,  E=12
	Octahedron               // F=8,  V=6,  E=12
	Dodecahedron             // F=12, V=20, E=30
	Icosahedron              // F=20, V=12, E=30
)

// All lists every solid in enum order.
var All = []Name{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}

// String returns a readable identifier for logs and CLI flags.
func (n Name) String() string {
	switch n {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return "unknown"
	}
}

// Parse resolves a case-insensitive solid name.
func Parse(s string) (Name, error) {
	for _, n := range All {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownSolid)
}

// vertexCounts maps each Name to its vertex count.
var vertexCounts = map[Name]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// faceSets maps each Name to its canonical face list (built at init).
var faceSets map[Name][][]int

// coordSets maps each Name to unit-sphere vertex coordinates (built at init).
var coordSets map[Name][][]float64

// VertexCount returns the number of vertices of the solid.
func VertexCount(n Name) int { return vertexCounts[n] }

// Faces returns a copy of the solid's face list, vertex ids in winding order.
func Faces(n Name) [][]int {
	src := faceSets[n]
	out := make([][]int, len(src))
	for i, f := range src {
		out[i] = append([]int(nil), f...)
	}
	return out
}

// Grid returns the solid as a loadable grid with unit-sphere coordinates.
func Grid(n Name) *grid.Grid {
	src := coordSets[n]
	verts := make([][]float64, len(src))
	for i, v := range src {
		verts[i] = append([]float64(nil), v...)
	}
	return &grid.Grid{
		GridID:   n.String(),
		GridName: strings.ToUpper(n.String()[:1]) + n.String()[1:],
		Vertices: verts,
		Faces:    Faces(n),
	}
}

func init() {
	faceSets = map[Name][][]int{
		// Tetrahedron: K4; every vertex triple bounds a face.
		Tetrahedron: {
			{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
		},

		// Cube: bottom cycle 0-1-2-3, top cycle 4-5-6-7, verticals i↔i+4.
		Cube: {
			{0, 1, 2, 3}, // bottom
			{4, 7, 6, 5}, // top
			{0, 4, 5, 1}, {1, 5, 6, 2}, {2, 6, 7, 3}, {3, 7, 4, 0},
		},

		// Octahedron: poles 0 (top) and 1 (bottom), equator ring 2-4-3-5.
		Octahedron: {
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	}
	faceSets[Icosahedron] = icosahedronFaces()
	faceSets[Dodecahedron] = dodecahedronFaces()

	coordSets = map[Name][][]float64{
		Tetrahedron:  tetrahedronCoords(),
		Cube:         cubeCoords(),
		Octahedron:   octahedronCoords(),
		Dodecahedron: dodecahedronCoords(),
		Icosahedron:  icosahedronCoords(),
	}
}

// icosahedronFaces builds the 20 faces of the classical labeling:
// top pole 0, top ring 1..5, bottom ring 6..10, bottom pole 11, with top
// ring vertex 1+i bridging bottom ring vertices 6+i and 6+((i+1) mod 5).
func icosahedronFaces() [][]int {
	faces := make([][]int, 0, 20)
	top := func(i int) int { return 1 + i%5 }
	bot := func(j int) int { return 6 + j%5 }
	for i := 0; i < 5; i++ {
		faces = append(faces, []int{0, top(i), top(i + 1)})
	}
	for i := 0; i < 5; i++ {
		// Ti–Ti+1 share bottom vertex B(i+1); Bi–Bi+1 share top vertex Ti.
		faces = append(faces, []int{top(i), top(i + 1), bot(i + 1)})
		faces = append(faces, []int{bot(i), bot(i + 1), top(i)})
	}
	for j := 0; j < 5; j++ {
		faces = append(faces, []int{11, bot(j + 1), bot(j)})
	}
	return faces
}

// dodecahedronFaces builds the 12 pentagons of the classical labeling:
// top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19 with
// spokes i→10+2i (top) and 5+i→11+2i (bottom).
func dodecahedronFaces() [][]int {
	ring := func(k int) int { return 10 + ((k%10)+10)%10 }
	faces := [][]int{
		{0, 1, 2, 3, 4}, // top
		{9, 8, 7, 6, 5}, // bottom
	}
	for i := 0; i < 5; i++ {
		faces = append(faces, []int{i, (i + 1) % 5, ring(2*(i+1)), ring(2*i + 1), ring(2 * i)})
	}
	for i := 0; i < 5; i++ {
		faces = append(faces, []int{5 + i, 5 + (i+1)%5, ring(2*i + 3), ring(2*i + 2), ring(2*i + 1)})
	}
	return faces
}

func tetrahedronCoords() [][]float64 {
	s := 1 / math.Sqrt(3)
	return [][]float64{
		{s, s, s}, {s, -s, -s}, {-s, s, -s}, {-s, -s, s},
	}
}

func cubeCoords() [][]float64 {
	s := 1 / math.Sqrt(3)
	bottom := [][2]float64{{-s, -s}, {s, -s}, {s, s}, {-s, s}}
	coords := make([][]float64, 0, 8)
	for _, xy := range bottom {
		coords = append(coords, []float64{xy[0], xy[1], -s})
	}
	for _, xy := range bottom {
		coords = append(coords, []float64{xy[0], xy[1], s})
	}
	return coords
}

func octahedronCoords() [][]float64 {
	return [][]float64{
		{0, 0, 1}, {0, 0, -1},
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
}

// pentagon appends five ring vertices at height z and radius r, rotated by
// phase radians.
func pentagon(coords [][]float64, r, z, phase float64) [][]float64 {
	for i := 0; i < 5; i++ {
		a := phase + 2*math.Pi*float64(i)/5
		coords = append(coords, []float64{r * math.Cos(a), r * math.Sin(a), z})
	}
	return coords
}

func icosahedronCoords() [][]float64 {
	z := 1 / math.Sqrt(5)
	r := 2 / math.Sqrt(5)
	coords := [][]float64{{0, 0, 1}}
	coords = pentagon(coords, r, z, 0)
	coords = pentagon(coords, r, -z, -math.Pi/5)
	return append(coords, []float64{0, 0, -1})
}

func dodecahedronCoords() [][]float64 {
	// Vertex latitudes of the face-up regular dodecahedron, circumradius 1.
	const (
		z1 = 0.794654 // pentagon caps
		r1 = 0.607062
		z2 = 0.187592 // middle ring
		r2 = 0.982247
	)
	coords := pentagon(nil, r1, z1, 0)
	coords = pentagon(coords, r1, -z1, math.Pi/5)
	// Middle ring alternates even (upper, aligned with the top pentagon)
	// and odd (lower) vertices 10..19.
	for i := 0; i < 5; i++ {
		a := 2 * math.Pi * float64(i) / 5
		coords = append(coords, []float64{r2 * math.Cos(a), r2 * math.Sin(a), z2})
		b := a + math.Pi/5
		coords = append(coords, []float64{r2 * math.Cos(b), r2 * math.Sin(b), -z2})
	}
	return coords
}
