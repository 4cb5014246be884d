package painter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/slithermesh/dual"
	"github.com/katalvlaran/slithermesh/mesh"
	"github.com/katalvlaran/slithermesh/painter"
	"github.com/katalvlaran/slithermesh/solids"
)

// PainterSuite paints a handful of seeds on each solid and checks the
// promised invariants directly on the resulting coloring.
type PainterSuite struct {
	suite.Suite
}

func TestPainterSuite(t *testing.T) {
	suite.Run(t, new(PainterSuite))
}

func (s *PainterSuite) newGraph(name solids.Name) *dual.Graph {
	m, err := mesh.New(solids.VertexCount(name), solids.Faces(name))
	s.Require().NoError(err)
	return dual.New(m)
}

// assertInvariants checks the success contract of Paint on g.
func (s *PainterSuite) assertInvariants(g *dual.Graph, floor int) {
	s.Require().Zero(g.Count(dual.Uncolored), "every face must be painted")
	s.Require().GreaterOrEqual(g.Count(dual.Red), floor)
	s.Require().GreaterOrEqual(g.Count(dual.Blue), floor)
	s.Require().Len(g.Components(dual.Red), 1, "red region must be connected")
	s.Require().Len(g.Components(dual.Blue), 1, "blue region must be connected")

	// No two adjacent boring faces.
	boring := make([]bool, g.NumNodes())
	for f := range boring {
		boring[f] = true
		for _, n := range g.Neighbors(f) {
			if g.ColorOf(n) != g.ColorOf(f) {
				boring[f] = false
				break
			}
		}
	}
	for f := 0; f < g.NumNodes(); f++ {
		if !boring[f] {
			continue
		}
		for _, n := range g.Neighbors(f) {
			s.Require().False(boring[n], "faces %d and %d are both boring", f, n)
		}
	}
}

// TestPaint_Invariants runs Paint over several seeds per solid.
func (s *PainterSuite) TestPaint_Invariants() {
	for _, name := range solids.All {
		for seed := int64(1); seed <= 5; seed++ {
			g := s.newGraph(name)
			_, err := painter.Paint(g, painter.WithRand(rand.New(rand.NewSource(seed))))
			s.Require().NoError(err, "%s seed %d", name, seed)
			floor := (g.NumNodes() + 2) / 3 // ⌈F/3⌉ for the default fraction
			if floor < 1 {
				floor = 1
			}
			s.assertInvariants(g, floor)
		}
	}
}

// TestPaint_Deterministic checks that the same seed reproduces the coloring.
func (s *PainterSuite) TestPaint_Deterministic() {
	g1 := s.newGraph(solids.Icosahedron)
	g2 := s.newGraph(solids.Icosahedron)
	_, err := painter.Paint(g1, painter.WithRand(rand.New(rand.NewSource(99))))
	s.Require().NoError(err)
	_, err = painter.Paint(g2, painter.WithRand(rand.New(rand.NewSource(99))))
	s.Require().NoError(err)
	s.Require().Equal(g1.Colors(), g2.Colors())
}

// TestPaint_Observer counts callbacks against the reported stats.
func (s *PainterSuite) TestPaint_Observer() {
	g := s.newGraph(solids.Dodecahedron)
	var repaints, grows, flips int
	obs := func(t painter.Transition, face int, c dual.Color) {
		switch t {
		case painter.TransitionRepaint:
			repaints++
		case painter.TransitionGrow:
			grows++
		case painter.TransitionFlip:
			flips++
		}
	}
	stats, err := painter.Paint(g,
		painter.WithRand(rand.New(rand.NewSource(7))),
		painter.WithObserver(obs),
	)
	s.Require().NoError(err)
	s.Require().Equal(stats.Repaints, repaints)
	s.Require().Equal(stats.Grows, grows)
	s.Require().Equal(stats.Flips, flips)
	s.Require().Positive(stats.Iterations)
}

// TestPaint_NotConverged forces the failure path with a zero iteration cap.
func (s *PainterSuite) TestPaint_NotConverged() {
	g := s.newGraph(solids.Cube)
	_, err := painter.Paint(g,
		painter.WithRand(rand.New(rand.NewSource(1))),
		painter.WithMaxIterations(0),
	)
	s.Require().ErrorIs(err, painter.ErrNotConverged)
}

//----------------------------------------------------------------------------//
// Plain table tests for the option helpers
//----------------------------------------------------------------------------//

func TestTransitionString(t *testing.T) {
	cases := []struct {
		tr   painter.Transition
		want string
	}{
		{painter.TransitionRepaint, "repaint"},
		{painter.TransitionGrow, "grow"},
		{painter.TransitionFlip, "flip"},
	}
	for _, tc := range cases {
		if got := tc.tr.String(); got != tc.want {
			t.Errorf("Transition(%d).String() = %q; want %q", tc.tr, got, tc.want)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	o := painter.DefaultOptions()
	require.Equal(t, 1000, o.MaxIterations)
	require.InDelta(t, 1.0/3.0, o.MinRegionFraction, 1e-9)
	require.Nil(t, o.Rand)
	require.Nil(t, o.Observer)
}
