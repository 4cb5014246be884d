// SPDX-License-Identifier: MIT
package grid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a malformed OBJ line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: obj line %d: %s", e.Line, e.Msg)
}

// round3 trims a coordinate to 3 decimal places for compact output.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// ParseOBJ converts a polyHedronisme-style OBJ export into a Grid.
//
// Recognized lines: `v x y z` (vertex), `f i1 i2 i3 ...` (face, 1-based
// indices; `/texture/normal` suffixes ignored), `g`/`o` (group/object name,
// used as grid id and name), `#` (comment). Unrecognized directives are
// skipped silently. The resulting surface is validated — closed, manifold,
// F + V = E + 2 — before the Grid is returned, so a partial export fails
// here rather than deep inside generation.
func ParseOBJ(r io.Reader) (*Grid, error) {
	g := &Grid{GridID: "unknown", GridName: "unknown"}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			// comment or blank
		case strings.HasPrefix(line, "g ") || strings.HasPrefix(line, "o "):
			if fields := strings.Fields(line); len(fields) > 1 {
				g.GridID = fields[1]
				g.GridName = fields[1]
			}
		case strings.HasPrefix(line, "v "):
			v, err := parseVertexLine(line, lineNo)
			if err != nil {
				return nil, err
			}
			g.Vertices = append(g.Vertices, v)
		case strings.HasPrefix(line, "f ") || line == "f":
			f, err := parseFaceLine(line, lineNo)
			if err != nil {
				return nil, err
			}
			g.Faces = append(g.Faces, f)
		default:
			// vt/vn/vp/s/usemtl and friends carry no topology; skip.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read obj: %w", err)
	}

	for i, f := range g.Faces {
		for _, v := range f {
			if v < 0 || v >= len(g.Vertices) {
				return nil, &ParseError{Line: 0, Msg: fmt.Sprintf("face %d references vertex %d of %d", i, v+1, len(g.Vertices))}
			}
		}
	}
	// Full topological validation: closed, manifold, Euler.
	if _, err := g.Mesh(); err != nil {
		return nil, fmt.Errorf("grid: obj surface invalid: %w", err)
	}
	return g, nil
}

// parseVertexLine parses `v x y z [w]`, keeping 3 coordinates.
func parseVertexLine(line string, lineNo int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("malformed vertex line %q", line)}
	}
	v := make([]float64, 3)
	for i := 0; i < 3; i++ {
		x, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad coordinate %q", fields[i+1])}
		}
		v[i] = round3(x)
	}
	return v, nil
}

// parseFaceLine parses `f i1 i2 i3 ...` with 1-based indices and optional
// `/texture/normal` suffixes.
func parseFaceLine(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("face needs at least 3 vertices: %q", line)}
	}
	face := make([]int, 0, len(fields)-1)
	for _, group := range fields[1:] {
		idx := group
		if slash := strings.IndexByte(group, '/'); slash >= 0 {
			idx = group[:slash]
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad vertex index %q", group)}
		}
		face = append(face, i-1) // OBJ indices are 1-based
	}
	return face, nil
}
