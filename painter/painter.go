// SPDX-License-Identifier: MIT
package painter

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/slithermesh/dual"
)

// Paint assigns every face of g either Red or Blue such that, on success:
//
//   - each color class forms exactly one connected component in g,
//   - each color class holds at least ⌈MinRegionFraction·F⌉ faces,
//   - no two adjacent faces are both "boring" (a face is boring when all
//     of its neighbors share its color).
//
// Paint repeatedly repairs a random initial coloring — population balance
// first, then per-color connectivity, then boring neighborhoods — until a
// full pass changes nothing. Repair by repainting random candidate faces is
// a deliberate simplicity trade-off: it may take many passes, and the
// MaxIterations cap converts pathological meshes into ErrNotConverged
// rather than an unbounded loop.
func Paint(g *dual.Graph, opts ...Option) (Stats, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	floor := int(math.Ceil(o.MinRegionFraction * float64(g.NumNodes())))
	if floor < 1 {
		floor = 1
	}

	p := &painter{g: g, rng: rng, floor: floor, observer: o.Observer}
	p.randomize()

	for iter := 0; iter < o.MaxIterations; iter++ {
		p.stats.Iterations++
		changed := false
		if p.adjustPopulations() {
			changed = true
		}
		// Growing one color can split the other; the outer loop re-checks
		// both until a pass is quiet.
		if p.ensureConnected(dual.Red) {
			changed = true
		}
		if p.ensureConnected(dual.Blue) {
			changed = true
		}
		if p.fixBoringNeighborhoods() {
			changed = true
		}
		if !changed {
			return p.stats, nil
		}
	}
	return p.stats, ErrNotConverged
}

// painter carries the per-call repair state.
type painter struct {
	g        *dual.Graph
	rng      *rand.Rand
	floor    int
	observer Observer
	stats    Stats
}

// paint recolors face f and notifies the observer.
func (p *painter) paint(f int, c dual.Color, t Transition) {
	p.g.SetColor(f, c)
	if p.observer != nil {
		p.observer(t, f, c)
	}
}

// randomize assigns an independent uniformly random color to every face.
func (p *painter) randomize() {
	for f := 0; f < p.g.NumNodes(); f++ {
		c := dual.Red
		if p.rng.Intn(2) == 1 {
			c = dual.Blue
		}
		p.g.SetColor(f, c)
	}
}

// adjustPopulations repaints random faces toward any color below the
// population floor, least-represented color first. Candidates are sampled
// without replacement, so a single call always terminates.
func (p *painter) adjustPopulations() bool {
	order := []dual.Color{dual.Red, dual.Blue}
	if p.g.Count(dual.Blue) < p.g.Count(dual.Red) {
		order[0], order[1] = order[1], order[0]
	}

	changed := false
	for _, c := range order {
		need := p.floor - p.g.Count(c)
		if need <= 0 {
			continue
		}
		candidates := p.facesNotColored(c)
		p.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		if need > len(candidates) {
			need = len(candidates)
		}
		for _, f := range candidates[:need] {
			p.paint(f, c, TransitionRepaint)
			p.stats.Repaints++
			changed = true
		}
	}
	return changed
}

// facesNotColored lists every face whose current color differs from c.
func (p *painter) facesNotColored(c dual.Color) []int {
	out := make([]int, 0, p.g.NumNodes())
	for f := 0; f < p.g.NumNodes(); f++ {
		if p.g.ColorOf(f) != c {
			out = append(out, f)
		}
	}
	return out
}

// ensureConnected grows color c until it forms a single component: pick the
// smallest component, pick a random differently-colored neighbor of it, and
// paint that neighbor c. Growing the smallest component first merges
// fragments with the fewest repaints.
func (p *painter) ensureConnected(c dual.Color) bool {
	changed := false
	for guard := 0; guard <= p.g.NumNodes(); guard++ {
		comps := p.g.Components(c)
		if len(comps) <= 1 {
			return changed
		}
		smallest := comps[0]
		for _, comp := range comps[1:] {
			if len(comp) < len(smallest) {
				smallest = comp
			}
		}
		candidates := p.frontier(smallest, c)
		if len(candidates) == 0 {
			return changed // isolated color class; leave for the next pass
		}
		f := candidates[p.rng.Intn(len(candidates))]
		p.paint(f, c, TransitionGrow)
		p.stats.Grows++
		changed = true
	}
	return changed
}

// frontier collects the distinct neighbors of comp not currently colored c.
func (p *painter) frontier(comp []int, c dual.Color) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, f := range comp {
		for _, n := range p.g.Neighbors(f) {
			if p.g.ColorOf(n) == c {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// fixBoringNeighborhoods flips one face of each adjacent boring pair to the
// opposite color. A face is boring when every neighbor shares its color;
// flipping clears the flag on the flipped face and all its neighbors.
func (p *painter) fixBoringNeighborhoods() bool {
	boring := make([]bool, p.g.NumNodes())
	for f := range boring {
		boring[f] = true
	}
	for f := 0; f < p.g.NumNodes(); f++ {
		for _, n := range p.g.Neighbors(f) {
			if p.g.ColorOf(n) != p.g.ColorOf(f) {
				boring[f] = false
				boring[n] = false
			}
		}
	}

	changed := false
	for f := 0; f < p.g.NumNodes(); f++ {
		if !boring[f] {
			continue
		}
		for _, n := range p.g.Neighbors(f) {
			if !boring[n] {
				continue
			}
			flip := f
			if p.rng.Intn(2) == 1 {
				flip = n
			}
			p.paint(flip, p.g.ColorOf(flip).Opposite(), TransitionFlip)
			p.stats.Flips++
			changed = true
			boring[flip] = false
			for _, nn := range p.g.Neighbors(flip) {
				boring[nn] = false
			}
			break // recheck remaining faces; the outer pass loops again anyway
		}
	}
	return changed
}
