// SPDX-License-Identifier: MIT
package puzzle

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/slithermesh/clue"
	"github.com/katalvlaran/slithermesh/dual"
	"github.com/katalvlaran/slithermesh/loop"
	"github.com/katalvlaran/slithermesh/mesh"
	"github.com/katalvlaran/slithermesh/painter"
	"github.com/katalvlaran/slithermesh/solver"
)

// Options configures puzzle generation.
type Options struct {
	// Count is the number of puzzles to generate. Default 1.
	Count int
	// ClueFraction is the share of faces receiving a clue. Default 0.3.
	ClueFraction float64
	// MaxAttempts bounds full repaint attempts per puzzle. Default 25.
	MaxAttempts int
	// MaxClueRetries bounds clue resamples per coloring before the
	// expensive repaint retry. Default 40.
	MaxClueRetries int
	// PaintIterations caps the painter's repair loop per attempt.
	// Default 1000.
	PaintIterations int
	// SolverBranches caps solver branch nodes per uniqueness check.
	// Default 1<<20.
	SolverBranches int
	// Minimize removes redundant clues after a unique set is found,
	// restoring any removal that breaks uniqueness. Default false.
	Minimize bool
	// Seed makes generation reproducible; 0 means time-based.
	Seed int64
}

// DefaultOptions returns the standard generation parameters.
func DefaultOptions() Options {
	return Options{
		Count:           1,
		ClueFraction:    clue.DefaultFraction,
		MaxAttempts:     25,
		MaxClueRetries:  40,
		PaintIterations: 1000,
		SolverBranches:  1 << 20,
		Minimize:        false,
		Seed:            0,
	}
}

// Generator produces puzzles for one mesh. Each generation attempt owns its
// own coloring and solver state; failed attempts are discarded wholesale.
type Generator struct {
	opts Options
	rng  *rand.Rand
	log  zerolog.Logger
}

// New creates a Generator. A nil opts selects DefaultOptions.
func New(opts *Options) *Generator {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Count < 1 {
		o.Count = 1
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		opts: o,
		rng:  rand.New(rand.NewSource(seed)),
		log:  log.With().Str("component", "generator").Logger(),
	}
}

// Generate produces Options.Count puzzles for m. Exhausting the attempt
// budget on any index fails the whole batch with ErrGenerationFailed.
func (g *Generator) Generate(m *mesh.Mesh) ([]Puzzle, error) {
	puzzles := make([]Puzzle, 0, g.opts.Count)
	for i := 0; i < g.opts.Count; i++ {
		p, err := g.generateOne(m)
		if err != nil {
			return puzzles, fmt.Errorf("puzzle %d: %w", i, err)
		}
		g.log.Info().
			Int("index", i).
			Int("loopLen", len(p.Solution)).
			Int("clues", countClued(p.Clues)).
			Msg("puzzle generated")
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}

// generateOne runs the paint → extract → clue → verify pipeline until a
// unique clue set emerges or the attempt budget runs out.
func (g *Generator) generateOne(m *mesh.Mesh) (Puzzle, error) {
	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		d := dual.New(m)
		stats, err := painter.Paint(d,
			painter.WithRand(g.rng),
			painter.WithMaxIterations(g.opts.PaintIterations),
		)
		if err != nil {
			g.log.Warn().Int("attempt", attempt).Err(err).Msg("painting failed")
			continue
		}
		colors := d.Colors()

		solution, err := loop.Extract(m, colors)
		if err != nil {
			// Coloring invariant violation: a defect signal, but one that
			// only aborts this attempt, not the process.
			g.log.Error().Int("attempt", attempt).Err(err).Msg("loop extraction failed")
			continue
		}
		g.log.Debug().
			Int("attempt", attempt).
			Int("iterations", stats.Iterations).
			Int("red", d.Count(dual.Red)).
			Int("blue", d.Count(dual.Blue)).
			Int("loopLen", len(solution)).
			Msg("regions painted")

		walls := clue.CountWalls(m, colors)
		set, ok, err := g.findUniqueClues(m, walls)
		if err != nil {
			g.log.Warn().Int("attempt", attempt).Err(err).Msg("solver budget exhausted")
			continue
		}
		if !ok {
			continue // every sample was ambiguous; repaint
		}
		if g.opts.Minimize {
			set = g.minimize(m, set)
		}
		return Puzzle{Clues: set.Dense(), Solution: solution}, nil
	}
	return Puzzle{}, ErrGenerationFailed
}

// findUniqueClues samples clue sets until the solver accepts one or the
// retry budget runs out. A budget error aborts the coloring attempt; a
// merely ambiguous sample is the expected retry signal, not an error.
func (g *Generator) findUniqueClues(m *mesh.Mesh, walls []int) (clue.Set, bool, error) {
	for retry := 0; retry <= g.opts.MaxClueRetries; retry++ {
		set := clue.Propose(walls,
			clue.WithRand(g.rng),
			clue.WithFraction(g.opts.ClueFraction),
		)
		unique, err := solver.Unique(m, set, solver.WithMaxBranches(g.opts.SolverBranches))
		if err != nil {
			// ErrBranchBudget and friends end the whole coloring attempt;
			// resampling clues will not make the search cheaper.
			return nil, false, err
		}
		if unique {
			return set, true, nil
		}
	}
	return nil, false, nil
}

// minimize removes clues one at a time in random order, restoring any
// removal that breaks uniqueness. Removing clues can only keep the puzzle
// unique or make it ambiguous, never invalid, so a single pass suffices.
func (g *Generator) minimize(m *mesh.Mesh, set clue.Set) clue.Set {
	out := set.Clone()
	faces := make([]int, 0, len(out))
	for f := range out {
		faces = append(faces, f)
	}
	sort.Ints(faces) // map order is not reproducible; the shuffle is
	g.rng.Shuffle(len(faces), func(i, j int) { faces[i], faces[j] = faces[j], faces[i] })

	for _, f := range faces {
		val := out[f]
		delete(out, f)
		unique, err := solver.Unique(m, out, solver.WithMaxBranches(g.opts.SolverBranches))
		if err != nil || !unique {
			out[f] = val
		}
	}
	return out
}

// countClued counts non-gap entries in a dense clue list.
func countClued(dense []int) int {
	n := 0
	for _, c := range dense {
		if c != clue.NoClue {
			n++
		}
	}
	return n
}
