// SPDX-License-Identifier: MIT

// Package puzzle ties the engine together: paint regions, extract the
// solution loop, sample clues, and keep only clue sets the solver proves
// unique. Attempts that fail cheaply (an ambiguous clue sample) retry with
// a fresh sample; attempts that fail expensively (painting non-convergence,
// solver budget, clue retries exhausted) restart from a fresh coloring,
// bounded by MaxAttempts per puzzle.
package puzzle

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrGenerationFailed is returned when every attempt at a puzzle index was
// exhausted without finding a unique clue set.
var ErrGenerationFailed = errors.New("puzzle: failed to generate a unique puzzle")

// Puzzle is one generated puzzle: dense clues (-1 for unclued faces,
// trailing gaps trimmed) and the hidden solution loop as ordered vertex ids.
// Immutable once created.
type Puzzle struct {
	Clues    []int `json:"clues"`
	Solution []int `json:"solution"`
}

// Document is the serialized output consumed by the game client.
type Document struct {
	GridID  string   `json:"gridId"`
	Puzzles []Puzzle `json:"puzzles"`
}

// NewDocument assembles the output document for a grid.
func NewDocument(gridID string, puzzles []Puzzle) *Document {
	return &Document{GridID: gridID, Puzzles: puzzles}
}

// WriteJSON writes the indented document followed by a newline.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "   ")
	return enc.Encode(d)
}
