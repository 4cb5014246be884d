// Package slithermesh generates playable Slitherlink puzzles on arbitrary
// closed polyhedral meshes — tetrahedra, cubes, icosahedra, or anything a
// polyhedral OBJ export can describe.
//
// 🚀 What is slithermesh?
//
//	A small, deterministic puzzle-generation engine that brings together:
//		• mesh/    — immutable face/vertex/edge adjacency with Euler validation
//		• dual/    — the face-adjacency dual graph with two-color state
//		• painter/ — random region growth into two connected, non-boring regions
//		• loop/    — extraction of the closed solution loop between the regions
//		• clue/    — wall counting and fractional clue sampling
//		• solver/  — constraint propagation + backtracking uniqueness check
//		• puzzle/  — the generate-verify-retry session tying it all together
//		• grid/    — grid JSON loading and OBJ conversion
//		• solids/  — canonical Platonic solid datasets for fixtures and demos
//
// ✨ Why choose slithermesh?
//
//   - Deterministic – every randomized step accepts a seeded *rand.Rand
//   - Bounded – iteration and branch caps convert runaway search into typed errors
//   - Pure core – generation never touches a display, a file, or a network
//
// A puzzle is a sparse set of per-face numbers; the hidden solution is the
// single closed loop of edges separating two connected face regions. The
// solver guarantees each emitted clue set admits exactly one such loop.
//
// Quick ASCII example (a tetrahedron, faces split 1-vs-3):
//
//	    0
//	   /|\
//	  1-+-2      one red face against three blue ones
//	   \|/       ⇒ the solution loop is the red face's triangle
//	    3
//
// Dive into README.md for the JSON grid format and CLI usage.
//
//	go get github.com/katalvlaran/slithermesh
package slithermesh
