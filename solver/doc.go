// Package solver implements the uniqueness check for generated puzzles:
// constraint propagation to a fixpoint, depth-first branching over edge
// states with explicit undo-log rollback, and an immediate abort once a
// second solution is found.
//
// What:
//
//   - Unique(m, clues) reports whether exactly one assignment of edge
//     states satisfies every clue and forms a single simple closed loop.
//   - CountSolutions(m, clues, limit) enumerates full valid assignments,
//     stopping as soon as `limit` of them are found.
//
// Propagation rules (each sound: it only excludes assignments that cannot
// extend to a valid single loop):
//
//   - Clue saturation: a face whose filled count equals its clue rules out
//     its remaining unknown edges; a face whose filled+unknown count equals
//     its clue fills them all.
//   - Vertex degree: loop vertices have degree 0 or 2, so a vertex with two
//     filled edges rules out its other unknowns, and a vertex with one
//     filled edge and a single unknown escape fills it (degree 1 is
//     impossible in any completion).
//   - Contradictions: a clue made impossible (overshoot, or not enough
//     undecided edges left), a vertex with three filled edges, a filled
//     path with no escape, or a closed filled cycle coexisting with filled
//     edges outside it or with a still-hungry clue — any of these prunes
//     the branch.
//   - Cycle completion: once the filled edges form a single closed cycle
//     and every clue is satisfied, all remaining unknown edges are ruled
//     out, since any further filled edge would create a second component.
//
// The rule set is deliberately not complete — branching covers whatever
// propagation cannot decide. Branching picks the most constrained unknown
// edge (clued incident faces first, then filled vertex degree), tries
// Filled then RuledOut, and restores state between branches by replaying
// the undo log back to a checkpoint mark.
//
// Errors:
//
//   - ErrClueIndex:    a clue references a nonexistent face.
//   - ErrBranchBudget: the branch cap was hit before uniqueness settled.
package solver
