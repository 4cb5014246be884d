// SPDX-License-Identifier: MIT

// Package grid adapts external mesh representations — the game's grid JSON
// and polyHedronisme-style OBJ exports — into validated inputs for the
// puzzle engine.
//
// What:
//
//   - Grid is the wire representation: id, name, 3D vertices, face lists.
//   - Load / LoadFile decode and shape-check grid JSON (all four fields
//     required; vertices are coordinate triples; faces have ≥3 entries).
//   - Grid.Mesh builds the validated adjacency model, surfacing mesh
//     construction errors (open surface, Euler violation, ...).
//   - ParseOBJ converts an OBJ export (v/f/g/o lines, 1-based indices,
//     optional /texture/normal suffixes) into a Grid, rounding coordinates
//     to 3 decimals and validating the surface before returning.
//   - Grid.WriteJSON emits the compact grid document (with nCells/nEdges/
//     nVertices counts and an empty puzzles list) the converter produces.
//
// Input-shape problems are fatal to the caller: the core assumes a
// validated, closed, genus-0 mesh and never re-checks.
//
// Errors:
//
//   - ErrMissingField: a required grid JSON property is absent.
//   - ErrVertexShape:  a vertex is not a coordinate triple.
//   - ErrFaceShape:    a face lists fewer than 3 vertices.
//   - ParseError:      a malformed OBJ line (carries the line number).
package grid

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/slithermesh/mesh"
)

// Sentinel errors for grid loading.
var (
	// ErrMissingField indicates a required grid JSON property is absent.
	ErrMissingField = errors.New("grid: missing required property")
	// ErrVertexShape indicates a vertex entry is not a coordinate triple.
	ErrVertexShape = errors.New("grid: vertex is not a coordinate triple")
	// ErrFaceShape indicates a face with fewer than 3 vertex entries.
	ErrFaceShape = errors.New("grid: face has fewer than 3 vertices")
)

// requiredFields lists the grid JSON properties Load insists on.
var requiredFields = []string{"gridId", "gridName", "vertices", "faces"}

// Grid is the wire-format mesh description shared with the game client.
// Vertex ids are positions in Vertices; Faces list vertex ids in winding
// order. Coordinates are carried through for display only — the engine
// reads nothing but the counts and the face lists.
type Grid struct {
	GridID   string      `json:"gridId"`
	GridName string      `json:"gridName"`
	Vertices [][]float64 `json:"vertices"`
	Faces    [][]int     `json:"faces"`
}

// Load decodes and shape-checks a grid JSON document.
func Load(r io.Reader) (*Grid, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("grid: decode: %w", err)
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("%q: %w", field, ErrMissingField)
		}
	}

	var g Grid
	buf, _ := json.Marshal(raw)
	if err := json.Unmarshal(buf, &g); err != nil {
		return nil, fmt.Errorf("grid: decode: %w", err)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// LoadFile reads and decodes the grid JSON document at path.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// validate applies the shape checks shared by Load and ParseOBJ.
func (g *Grid) validate() error {
	for i, v := range g.Vertices {
		if len(v) != 3 {
			return fmt.Errorf("vertex %d has %d coordinates: %w", i, len(v), ErrVertexShape)
		}
	}
	for i, f := range g.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d vertices: %w", i, len(f), ErrFaceShape)
		}
	}
	return nil
}

// Mesh builds the validated adjacency model for the grid. Topological
// problems (open surface, non-manifold edges, Euler violation) surface as
// mesh package errors.
func (g *Grid) Mesh() (*mesh.Mesh, error) {
	return mesh.New(len(g.Vertices), g.Faces)
}

// gridDocument is the compact converter output: the Grid fields plus
// derived counts and an empty puzzles list for the game client to fill.
type gridDocument struct {
	GridID    string      `json:"gridId"`
	GridName  string      `json:"gridName"`
	NCells    int         `json:"nCells"`
	NEdges    int         `json:"nEdges"`
	NVertices int         `json:"nVertices"`
	Vertices  [][]float64 `json:"vertices"`
	Faces     [][]int     `json:"faces"`
	Puzzles   []any       `json:"puzzles"`
}

// WriteJSON emits the compact grid document for a converted mesh. The edge
// count is Σ|face|/2, every edge belonging to exactly two faces.
func (g *Grid) WriteJSON(w io.Writer) error {
	halfEdges := 0
	for _, f := range g.Faces {
		halfEdges += len(f)
	}
	doc := gridDocument{
		GridID:    g.GridID,
		GridName:  g.GridName,
		NCells:    len(g.Faces),
		NEdges:    halfEdges / 2,
		NVertices: len(g.Vertices),
		Vertices:  g.Vertices,
		Faces:     g.Faces,
		Puzzles:   []any{},
	}
	if err := json.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("grid: encode: %w", err)
	}
	return nil
}
