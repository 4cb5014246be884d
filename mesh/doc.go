// Package mesh builds an immutable adjacency model of a closed polyhedral
// surface from a plain vertex-count + face-list description.
//
// What:
//
//   - Mesh wraps ordered face→vertex lists with derived edge, face, and
//     vertex adjacency, built exactly once by New.
//   - Edges are unordered vertex pairs with dense integer ids; every query
//     works on integer ids so callers can keep per-face or per-edge state
//     in flat slices.
//   - Construction validates the surface: no degenerate faces, no
//     out-of-range vertex references, every edge shared by exactly two
//     faces, and Euler's formula F + V = E + 2 (genus-0 closed surface).
//
// Why:
//
//   - Puzzle generation on a polyhedron needs constant-time neighbor
//     queries (face↔face, vertex↔vertex, edge↔faces) and a guarantee that
//     boundary walks terminate; a validated closed mesh provides both.
//
// Complexity:
//
//   - New:              O(Σ|face|) time and memory.
//   - All queries:      O(1), returning internal slices (callers must not
//     mutate them; Mesh is shared read-only).
//
// Errors:
//
//   - ErrNoFaces:          the face list is empty.
//   - ErrDegenerateFace:   a face has fewer than 3 vertices or repeats one.
//   - ErrVertexIndex:      a face references a vertex id out of range.
//   - ErrOpenSurface:      an edge borders fewer than two faces.
//   - ErrNonManifoldEdge:  an edge borders more than two faces.
//   - ErrEulerFormula:     F + V ≠ E + 2 after construction.
package mesh
